// Package fdrconfig deals with the pipeline configuration file: output
// formatting, global metadata attributes, and NetCDF encoding parameters
// for the FDR generation.
package fdrconfig

// Config is the root of the configuration tree.
type Config struct {
	Controls       Controls               `json:"controls"`
	Output         Output                 `json:"output"`
	GlobalAttrs    map[string]interface{} `json:"global_attrs,omitempty"`
	GACHeaderAttrs []string               `json:"gac_header_attrs,omitempty"`
	NetCDF         NetCDF                 `json:"netcdf"`
}

// Controls holds the knobs passed through to the level 1c reader.
type Controls struct {
	ReaderKwargs ReaderKwargs `json:"reader_kwargs"`
}

// ReaderKwargs is passed verbatim to the level 1c reader.  None of it is
// interpreted here beyond validation.
type ReaderKwargs struct {
	TLEDir          string  `json:"tle_dir,omitempty"`
	TLEName         string  `json:"tle_name,omitempty"`
	TLEThresh       float64 `json:"tle_thresh,omitempty"`
	CalibrationFile string  `json:"calibration_file,omitempty"`
}

// Output controls where output files go and what they are called.
type Output struct {
	OutputDir string `json:"output_dir,omitempty"`

	// FnameFmt is a fnamefmt template.  The known placeholders are
	// listed in KnownPlaceholders.
	FnameFmt string `json:"fname_fmt"`
}

// KnownPlaceholders are the placeholder names an output filename template
// may use.
var KnownPlaceholders = []string{
	"processing_level",
	"platform",
	"start_time",
	"end_time",
	"processing_mode",
	"disposition_mode",
	"creation_time",
	"version_int",
}

// NetCDF holds the writer engine selection and the per-variable encoding
// directives.
type NetCDF struct {
	Engine   string              `json:"engine,omitempty"`
	Encoding map[string]Encoding `json:"encoding,omitempty"`
}

// Encoding is the encoding directive for one variable.
type Encoding struct {
	DType       string   `json:"dtype,omitempty"`
	ScaleFactor *float64 `json:"scale_factor,omitempty"`
	AddOffset   *float64 `json:"add_offset,omitempty"`
	Zlib        bool     `json:"zlib,omitempty"`
	Complevel   *int     `json:"complevel,omitempty"`
	FillValue   *float64 `json:"_FillValue,omitempty"`
}

// Defaults applied by Load.
const (
	DefaultEngine    = "netcdf4"
	DefaultComplevel = 4
)
