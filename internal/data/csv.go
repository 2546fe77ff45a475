package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/axon-ml/axon/internal/tensor"
)

// LoadCSV reads a labeled dataset from a CSV file laid out one sample
// per row: the first column is the integer class label, the remaining
// numFeatures columns are feature values. A non-numeric first row is
// treated as a header and skipped. Feature values are divided by scale
// (pass 1 to keep them as-is, 255 for byte-range pixels). maxSamples
// limits how many rows are loaded; 0 loads all.
func LoadCSV(path string, numFeatures int, scale float64, maxSamples int) (*tensor.Tensor, []int, error) {
	if numFeatures <= 0 {
		return nil, nil, fmt.Errorf("data: feature count must be > 0, got %d", numFeatures)
	}
	if scale == 0 {
		return nil, nil, fmt.Errorf("data: scale must be non-zero")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("data: open csv: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = numFeatures + 1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("data: read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("data: csv file %s is empty", path)
	}

	if _, err := strconv.Atoi(records[0][0]); err != nil {
		records = records[1:] // header row
	}
	if maxSamples > 0 && len(records) > maxSamples {
		records = records[:maxSamples]
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("data: csv file %s has no data rows", path)
	}

	inputs := tensor.Zeros(tensor.Shape{len(records), numFeatures})
	labels := make([]int, len(records))
	dst := inputs.Data()

	for i, record := range records {
		label, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, nil, fmt.Errorf("data: invalid label at row %d: %w", i+1, err)
		}
		if label < 0 {
			return nil, nil, fmt.Errorf("data: negative label %d at row %d", label, i+1)
		}
		labels[i] = label

		row := dst[i*numFeatures : (i+1)*numFeatures]
		for j := 0; j < numFeatures; j++ {
			v, err := strconv.ParseFloat(record[j+1], 64)
			if err != nil {
				return nil, nil, fmt.Errorf("data: invalid value at row %d, column %d: %w", i+1, j+1, err)
			}
			row[j] = v / scale
		}
	}

	return inputs, labels, nil
}
