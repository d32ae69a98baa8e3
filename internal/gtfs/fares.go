package gtfs

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"

	"github.com/sikandarshahbaz-1996/go-transit-mcp/internal/transit"
)

// parseFareAttributes reads fare_attributes.txt out of the zipped feed. The
// static parser does not cover fares, so this file is read directly. Feeds
// without it are valid and yield an empty rule set.
func parseFareAttributes(feed []byte) (map[string]transit.FareRule, error) {
	zr, err := zip.NewReader(bytes.NewReader(feed), int64(len(feed)))
	if err != nil {
		return nil, fmt.Errorf("error opening feed archive: %w", err)
	}

	var file *zip.File
	for _, f := range zr.File {
		if path.Base(f.Name) == "fare_attributes.txt" {
			file = f
			break
		}
	}
	if file == nil {
		return map[string]transit.FareRule{}, nil
	}

	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("error opening fare_attributes.txt: %w", err)
	}
	defer rc.Close() // nolint

	return parseFareRows(rc)
}

func parseFareRows(r io.Reader) (map[string]transit.FareRule, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]transit.FareRule{}, nil
		}
		return nil, fmt.Errorf("error reading fare_attributes.txt header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	fareIDCol, ok := col["fare_id"]
	if !ok {
		return nil, errors.New("fare_attributes.txt has no fare_id column")
	}
	priceCol, ok := col["price"]
	if !ok {
		return nil, errors.New("fare_attributes.txt has no price column")
	}
	currencyCol, hasCurrency := col["currency_type"]

	rules := make(map[string]transit.FareRule)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading fare_attributes.txt row: %w", err)
		}

		fareID := record[fareIDCol]
		if fareID == "" {
			continue
		}

		price, err := strconv.ParseFloat(record[priceCol], 64)
		if err != nil {
			return nil, fmt.Errorf("error parsing price for fare %s: %w", fareID, err)
		}

		currency := ""
		if hasCurrency && currencyCol < len(record) {
			currency = record[currencyCol]
		}

		// The fare id doubles as the "<fromZone>-<toZone>" lookup key.
		rules[fareID] = transit.FareRule{
			FareID:   fareID,
			Price:    price,
			Currency: currency,
		}
	}

	return rules, nil
}
