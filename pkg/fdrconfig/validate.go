package fdrconfig

import (
	"fmt"
	"math"
	"sort"

	"github.com/pytroll/fdrtool/pkg/fnamefmt"
)

// intRange is the representable range of an integer dtype.
type intRange struct {
	min float64
	max float64
}

var intDTypes = map[string]intRange{
	"int8":   {math.MinInt8, math.MaxInt8},
	"uint8":  {0, math.MaxUint8},
	"int16":  {math.MinInt16, math.MaxInt16},
	"uint16": {0, math.MaxUint16},
	"int32":  {math.MinInt32, math.MaxInt32},
	"uint32": {0, math.MaxUint32},
}

var floatDTypes = map[string]bool{
	"float32": true,
	"float64": true,
}

// Validate checks the internal consistency of the configuration: the
// filename template parses and uses only known placeholders, and every
// encoding directive is coherent with its declared dtype.
func (cfg *Config) Validate() error {
	if err := cfg.Output.validate(); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	// Deterministic error reporting regardless of map order.
	names := make([]string, 0, len(cfg.NetCDF.Encoding))
	for name := range cfg.NetCDF.Encoding {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := cfg.NetCDF.Encoding[name].validate(); err != nil {
			return fmt.Errorf("netcdf: encoding: %s: %w", name, err)
		}
	}
	return nil
}

func (out Output) validate() error {
	if out.FnameFmt == "" {
		return fmt.Errorf("fname_fmt must be set")
	}
	tmpl, err := fnamefmt.Parse(out.FnameFmt)
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(KnownPlaceholders))
	for _, name := range KnownPlaceholders {
		known[name] = true
	}
	for _, name := range tmpl.Placeholders() {
		if !known[name] {
			return fmt.Errorf("fname_fmt: unknown placeholder %q", name)
		}
	}
	return nil
}

func (enc Encoding) validate() error {
	if enc.DType != "" {
		_, isInt := intDTypes[enc.DType]
		if !isInt && !floatDTypes[enc.DType] {
			return fmt.Errorf("unknown dtype %q", enc.DType)
		}
	}
	if enc.Complevel != nil {
		if *enc.Complevel < 0 || *enc.Complevel > 9 {
			return fmt.Errorf("complevel %d out of range 0..9", *enc.Complevel)
		}
		if !enc.Zlib && *enc.Complevel > 0 {
			return fmt.Errorf("complevel %d given but zlib is off", *enc.Complevel)
		}
	}
	if enc.FillValue != nil {
		if rng, isInt := intDTypes[enc.DType]; isInt {
			fill := *enc.FillValue
			if fill != math.Trunc(fill) {
				return fmt.Errorf("_FillValue %v is not an integer but dtype is %s", fill, enc.DType)
			}
			if fill < rng.min || fill > rng.max {
				return fmt.Errorf("_FillValue %v is not representable in %s", fill, enc.DType)
			}
		}
	}
	return nil
}
