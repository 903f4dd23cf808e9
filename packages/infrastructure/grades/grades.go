package grades

import (
	"classroom/packages/common/logger"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

var gradesLogger = logger.NewSource("GRADES", logger.Default)

var ErrFileNotFound = errors.New("arquivo de notas não existe, adicione notas primeiro")
var ErrInvalidRecord = errors.New("registro inválido no arquivo de notas")

var Header = []string{"Nome", "Materia", "Nota"}

type Grade struct {
	Nome    string
	Materia string
	Nota    float64
}

func (g *Grade) record() []string {
	return []string{g.Nome, g.Materia, strconv.FormatFloat(g.Nota, 'f', -1, 64)}
}

// Sample grades of the course script.
func Samples() []*Grade {
	return []*Grade{
		{Nome: "Carlos", Materia: "Matemática", Nota: 8.5},
		{Nome: "Fernanda", Materia: "História", Nota: 9.2},
		{Nome: "Carlos", Materia: "Português", Nota: 7},
	}
}

// Appends grades to CSV file at path, creating it if needed.
// Header is written only if file is new or empty.
func Add(path string, grades ...*Grade) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)

	if info.Size() == 0 {
		if err := w.Write(Header); err != nil {
			return err
		}
	}

	for _, g := range grades {
		if err := w.Write(g.record()); err != nil {
			return err
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		gradesLogger.Error("Failed to write "+path, err.Error(), nil)
		return err
	}

	gradesLogger.Trace("Added "+strconv.Itoa(len(grades))+" grade(s) to "+path, nil)

	return f.Close()
}

// Reads all grades from CSV file at path, header row is skipped.
func Load(path string) ([]*Grade, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(Header)

	grades := []*Grade{}

	if _, err := r.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return grades, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
		}

		nota, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			line, _ := r.FieldPos(2)
			return nil, fmt.Errorf("%w: linha %d: nota '%s'", ErrInvalidRecord, line, record[2])
		}

		grades = append(grades, &Grade{Nome: record[0], Materia: record[1], Nota: nota})
	}

	return grades, nil
}
