package trace

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/tebeka/atexit"
)

var csvHeader = []string{"customer_id", "arrival_time", "service_start", "departure_time", "burst", "queue_depth"}

// CSVWriter stores customer records in a CSV file. Records are buffered and
// written in batches of bufferSize.
type CSVWriter struct {
	path   string
	file   *os.File
	csv    *csv.Writer
	closed bool

	records    []CustomerRecord
	bufferSize int
}

// NewCSVWriter creates the trace CSV file and writes its header. It refuses
// to overwrite an existing file.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if path == "" {
		path = DefaultBaseName() + ".csv"
	}
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("file %s already exists", path)
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating trace file: %w", err)
	}

	w := &CSVWriter{
		path:       path,
		file:       file,
		csv:        csv.NewWriter(file),
		bufferSize: 1000,
	}
	if err := w.csv.Write(csvHeader); err != nil {
		file.Close()
		return nil, fmt.Errorf("writing trace header: %w", err)
	}

	atexit.Register(func() {
		if err := w.Close(); err != nil {
			logrus.Errorf("closing trace file %s: %v", w.path, err)
		}
	})
	return w, nil
}

// Path returns the file the writer stores records in.
func (w *CSVWriter) Path() string {
	return w.path
}

// Write buffers a record, flushing when the buffer is full.
func (w *CSVWriter) Write(record CustomerRecord) error {
	if w.closed {
		return fmt.Errorf("trace file %s is closed", w.path)
	}
	w.records = append(w.records, record)
	if len(w.records) >= w.bufferSize {
		return w.Flush()
	}
	return nil
}

// Flush writes all buffered records to the file.
func (w *CSVWriter) Flush() error {
	if w.closed {
		return nil
	}
	for _, r := range w.records {
		row := []string{
			r.CustomerID,
			strconv.FormatInt(r.ArrivalTime, 10),
			strconv.FormatInt(r.ServiceStart, 10),
			strconv.FormatInt(r.DepartureTime, 10),
			strconv.FormatInt(r.Burst, 10),
			strconv.Itoa(r.QueueDepth),
		}
		if err := w.csv.Write(row); err != nil {
			return fmt.Errorf("writing trace row: %w", err)
		}
	}
	w.records = nil
	w.csv.Flush()
	return w.csv.Error()
}

// Close flushes and closes the file. Safe to call more than once.
func (w *CSVWriter) Close() error {
	if w.closed {
		return nil
	}
	flushErr := w.Flush()
	w.closed = true
	if err := w.file.Close(); err != nil {
		return err
	}
	return flushErr
}
