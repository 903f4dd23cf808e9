package commands

import (
	"classroom/packages/common/validation"
	"classroom/packages/infrastructure/api/openmeteo"
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func celsius(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "°C"
}

func newWeatherCommand(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weather",
		Short: "Consulta de clima (Open-Meteo)",
	}

	cmd.AddCommand(
		newWeatherNowCommand(ctx),
		newWeatherCoordsCommand(ctx),
		newWeatherDailyCommand(ctx),
		newWeatherCompareCommand(ctx),
	)

	return cmd
}

func newWeatherNowCommand(ctx context.Context) *cobra.Command {
	var country string

	cmd := &cobra.Command{
		Use:   "now <cidade>",
		Short: "Clima atual",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openmeteo.New().Current(ctx, args[0], country)
			if err != nil {
				return err
			}

			title(cmd.OutOrStdout(), w.City+", "+w.Country)
			renderWeather(cmd, w)

			return nil
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "código do país (ex: BR)")

	return cmd
}

func renderWeather(cmd *cobra.Command, w *openmeteo.Weather) {
	renderPairs(cmd.OutOrStdout(), [][2]string{
		{"Temperatura", celsius(w.Temperature)},
		{"Umidade", strconv.FormatFloat(w.Humidity, 'f', 0, 64) + "%"},
		{"Pressão", strconv.FormatFloat(w.Pressure, 'f', 1, 64) + " hPa"},
		{"Vento", strconv.FormatFloat(w.WindSpeed, 'f', 1, 64) + " m/s"},
		{"Condição", w.Description},
		{"Coordenadas", fmt.Sprintf("%.2f, %.2f", w.Latitude, w.Longitude)},
	})
}

func newWeatherCoordsCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "coords <latitude> <longitude>",
		Short: "Clima atual em coordenadas",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			minLat, maxLat := -90.0, 90.0
			minLon, maxLon := -180.0, 180.0

			lat, err := validation.Float(args[0], &minLat, &maxLat)
			if err != nil {
				return err
			}
			lon, err := validation.Float(args[1], &minLon, &maxLon)
			if err != nil {
				return err
			}

			w, werr := openmeteo.New().AtCoordinates(ctx, lat, lon)
			if werr != nil {
				return werr
			}

			renderWeather(cmd, w)

			return nil
		},
	}
}

func newWeatherDailyCommand(ctx context.Context) *cobra.Command {
	var country string
	var days int

	cmd := &cobra.Command{
		Use:   "daily <cidade>",
		Short: "Previsão diária",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			forecast, err := openmeteo.New().Daily(ctx, args[0], country, days)
			if err != nil {
				return err
			}

			rows := make([][]string, len(forecast))
			for i, d := range forecast {
				rows[i] = []string{
					d.Date,
					celsius(d.Min),
					celsius(d.Max),
					strconv.FormatFloat(d.Precipitation, 'f', 1, 64) + " mm",
					d.Description,
				}
			}

			renderTable(cmd.OutOrStdout(), []string{"Data", "Mínima", "Máxima", "Chuva", "Condição"}, rows)

			return nil
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "código do país (ex: BR)")
	cmd.Flags().IntVar(&days, "days", 7, "quantidade de dias (1-"+strconv.Itoa(openmeteo.MaxForecastDays)+")")

	return cmd
}

type compareOptions struct {
	minTemp   float64
	maxTemp   float64
	condition string
}

func newWeatherCompareCommand(ctx context.Context) *cobra.Command {
	opts := new(compareOptions)

	cmd := &cobra.Command{
		Use:   "compare <cidade> [cidade...]",
		Short: "Comparar clima atual de várias cidades",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comparisons := openmeteo.Compare(ctx, openmeteo.New(), args)

			rows := make([][]string, len(comparisons))
			for i, c := range comparisons {
				if c.Err != nil {
					rows[i] = []string{c.City, "-", "-", "Erro: " + c.Err.Error()}
					continue
				}
				rows[i] = []string{
					c.Weather.City,
					celsius(c.Weather.Temperature),
					strconv.FormatFloat(c.Weather.Humidity, 'f', 0, 64) + "%",
					c.Weather.Description,
				}
			}

			out := cmd.OutOrStdout()

			renderTable(out, []string{"Cidade", "Temperatura", "Umidade", "Condição"}, rows)

			ok := openmeteo.Succeeded(comparisons)
			if cmd.Flags().Changed("min-temp") || cmd.Flags().Changed("max-temp") {
				ok = openmeteo.FilterByTemperature(ok, opts.minTemp, opts.maxTemp)
			}
			if opts.condition != "" {
				ok = openmeteo.FilterByCondition(ok, opts.condition)
			}
			if len(ok) == 0 {
				warning(out, "Nenhuma cidade atende aos critérios")
				return nil
			}

			hottest, _ := openmeteo.Hottest(ok)
			coldest, _ := openmeteo.Coldest(ok)

			renderPairs(out, [][2]string{
				{"Mais quente", hottest.City + " (" + celsius(hottest.Temperature) + ")"},
				{"Mais fria", coldest.City + " (" + celsius(coldest.Temperature) + ")"},
				{"Média", celsius(openmeteo.AverageTemperature(ok))},
			})

			return nil
		},
	}

	cmd.Flags().Float64Var(&opts.minTemp, "min-temp", -100, "temperatura mínima para o resumo")
	cmd.Flags().Float64Var(&opts.maxTemp, "max-temp", 100, "temperatura máxima para o resumo")
	cmd.Flags().StringVar(&opts.condition, "condition", "", "condição do tempo para o resumo (ex: chuva)")

	return cmd
}
