package openmeteo

const UnknownDescription = "Desconhecido"

var descriptions = map[int]string{
	0:  "Céu limpo",
	1:  "Parcialmente nublado",
	2:  "Parcialmente nublado",
	3:  "Nublado",
	45: "Nevoeiro",
	48: "Nevoeiro",
	51: "Garoa leve",
	53: "Garoa moderada",
	55: "Garoa densa",
	61: "Chuva leve",
	63: "Chuva moderada",
	65: "Chuva pesada",
	71: "Neve leve",
	73: "Neve moderada",
	75: "Neve pesada",
	80: "Pancadas de chuva",
	81: "Pancadas de chuva",
	82: "Pancadas de chuva pesada",
	85: "Pancadas de neve",
	86: "Pancadas de neve",
	95: "Tempestade",
}

// Returns description of WMO weather code.
func Describe(code int) string {
	if d, ok := descriptions[code]; ok {
		return d
	}
	return UnknownDescription
}
