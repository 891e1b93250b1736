package granule

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// Document is the metadata document of a level 1c granule: the global
// attributes, the per-scanline acquisition times, the mid-swath coordinate
// samples, and (after a metadata update) the additional variables.
type Document struct {
	GlobalAttrs map[string]interface{} `json:"global_attrs"`
	GACHeader   map[string]interface{} `json:"gac_header,omitempty"`

	// AcqTime has one entry per scanline, UTC.
	AcqTime []time.Time `json:"acq_time"`

	// Latitude/longitude at the middle of the swath, one entry per
	// scanline.  Used for the equator crossing detection.
	MidSwathLat []float64 `json:"midswath_latitude"`
	MidSwathLon []float64 `json:"midswath_longitude"`

	Variables map[string]Variable `json:"variables,omitempty"`
}

// Variable is a scalar variable stamped into a Document.
type Variable struct {
	Data  interface{}            `json:"data"`
	Attrs map[string]interface{} `json:"attributes,omitempty"`
}

// ReadDocument reads and validates a granule metadata document.
func ReadDocument(filename string) (*Document, error) {
	bs, err := os.ReadFile(filename)
	if err != nil {
		return nil, &fs.PathError{
			Op:   "open granule",
			Path: filename,
			Err:  err,
		}
	}
	var doc Document
	decoder := json.NewDecoder(bytes.NewReader(bs))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if err := doc.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &doc, nil
}

func (d *Document) validate() error {
	if len(d.AcqTime) == 0 {
		return fmt.Errorf("granule has no scanlines")
	}
	if _, err := d.platform(); err != nil {
		return err
	}
	if len(d.MidSwathLat) != len(d.AcqTime) || len(d.MidSwathLon) != len(d.AcqTime) {
		return fmt.Errorf("mid-swath coordinates must have one sample per scanline (%d), got lat=%d lon=%d",
			len(d.AcqTime), len(d.MidSwathLat), len(d.MidSwathLon))
	}
	return nil
}

func (d *Document) platform() (string, error) {
	attr, ok := d.GlobalAttrs["platform"]
	if !ok {
		return "", fmt.Errorf("granule has no \"platform\" attribute")
	}
	str, ok := attr.(string)
	if !ok {
		return "", fmt.Errorf("granule \"platform\" attribute is not a string: %v", attr)
	}
	return NormalizePlatform(str), nil
}

// Metadata extracts the catalog record of this granule, with the computed
// fields unset and the quality flag "ok".
func (d *Document) Metadata(filename string) (Metadata, error) {
	platform, err := d.platform()
	if err != nil {
		return Metadata{}, fmt.Errorf("%s: %w", filename, err)
	}
	return Metadata{
		Platform:    platform,
		StartTime:   d.AcqTime[0].UTC(),
		EndTime:     d.AcqTime[len(d.AcqTime)-1].UTC(),
		AlongTrack:  len(d.AcqTime),
		Filename:    filename,
		QualityFlag: FlagOK,
	}, nil
}

// Stamp writes the additional metadata variables for the given record into
// the document, replacing any previous stamping.  Unset values become the
// variable's fill value, and timestamps are encoded per the variable's
// units attribute.
func (d *Document) Stamp(md Metadata) {
	if d.Variables == nil {
		d.Variables = make(map[string]Variable)
	}
	for _, def := range AdditionalVariables() {
		var data interface{}
		switch def.Name {
		case "overlap_free_start":
			if md.OverlapFreeStart != nil {
				data = *md.OverlapFreeStart
			}
		case "overlap_free_end":
			if md.OverlapFreeEnd != nil {
				data = *md.OverlapFreeEnd
			}
		case "midnight_line":
			if md.MidnightLine != nil {
				data = *md.MidnightLine
			}
		case "equator_crossing_longitude":
			if md.EquatorCrossingLon != nil {
				data = *md.EquatorCrossingLon
			}
		case "equator_crossing_time":
			if md.EquatorCrossingTime != nil {
				data = EncodeEpochSeconds(*md.EquatorCrossingTime)
			}
		case "global_quality_flag":
			data = uint8(md.QualityFlag)
		}
		if data == nil {
			data = def.FillValue
		}
		attrs := make(map[string]interface{}, len(def.Attrs)+1)
		for key, val := range def.Attrs {
			attrs[key] = val
		}
		if def.FillValue != nil {
			attrs["_FillValue"] = def.FillValue
		}
		d.Variables[def.Name] = Variable{
			Data:  data,
			Attrs: attrs,
		}
	}
}

// Write writes the document back to disk.
func (d *Document) Write(filename string) error {
	bs, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	bs = append(bs, '\n')
	if err := os.WriteFile(filename, bs, 0o666); err != nil {
		return err
	}
	return nil
}
