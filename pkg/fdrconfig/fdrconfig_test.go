package fdrconfig_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pytroll/fdrtool/pkg/fdrconfig"
)

const exampleConfig = `
controls:
  reader_kwargs:
    tle_dir: /data/tle
    tle_name: TLE_%(satname)s.txt
    tle_thresh: 7
    calibration_file: /data/calibration.json
output:
  output_dir: /data/output
  fname_fmt: "AVHRR-GAC_FDR_{processing_level}_{platform}_{start_time:%Y%m%dT%H%M%SZ}_{end_time:%Y%m%dT%H%M%SZ}_{processing_mode}_{disposition_mode}_{creation_time:%Y%m%dT%H%M%SZ}_{version_int}.nc"
global_attrs:
  Conventions: "CF-1.8, ACDD-1.3"
  title: AVHRR GAC L1C FDR
  institution: EUMETSAT
  licence: EUMETSAT data policy
  version_satpy: 0.25.1
gac_header_attrs:
  - data_set_name
  - start_of_data_set_year
netcdf:
  engine: netcdf4
  encoding:
    qual_flags:
      dtype: int16
      zlib: true
      complevel: 4
      _FillValue: -32767
    latitude:
      dtype: int32
      scale_factor: 0.001
      zlib: true
      _FillValue: -2147483648
    brightness_temperature:
      dtype: int16
      scale_factor: 0.01
      add_offset: 273.15
      zlib: true
      complevel: 4
      _FillValue: -32767
`

func TestParse(t *testing.T) {
	t.Parallel()
	cfg, err := fdrconfig.Parse([]byte(exampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "/data/tle", cfg.Controls.ReaderKwargs.TLEDir)
	assert.Equal(t, 7.0, cfg.Controls.ReaderKwargs.TLEThresh)
	assert.Equal(t, "/data/output", cfg.Output.OutputDir)
	assert.Equal(t, "netcdf4", cfg.NetCDF.Engine)
	assert.Equal(t, "CF-1.8, ACDD-1.3", cfg.GlobalAttrs["Conventions"])
	assert.Equal(t, []string{"data_set_name", "start_of_data_set_year"}, cfg.GACHeaderAttrs)

	qualFlags := cfg.NetCDF.Encoding["qual_flags"]
	assert.Equal(t, "int16", qualFlags.DType)
	assert.True(t, qualFlags.Zlib)
	require.NotNil(t, qualFlags.Complevel)
	assert.Equal(t, 4, *qualFlags.Complevel)
	require.NotNil(t, qualFlags.FillValue)
	assert.Equal(t, -32767.0, *qualFlags.FillValue)

	// complevel defaulted for zlib-enabled variables that don't set it
	latitude := cfg.NetCDF.Encoding["latitude"]
	require.NotNil(t, latitude.Complevel)
	assert.Equal(t, fdrconfig.DefaultComplevel, *latitude.Complevel)
}

func TestParseErrors(t *testing.T) {
	type TestCase struct {
		Input     string
		OutputErr string
	}
	testcases := []TestCase{
		{
			Input: "output:\n  fname_fmt: x\nbogus_key: 1\n",
			OutputErr: `error unmarshaling JSON: while decoding JSON: json: unknown field ` +
				`"bogus_key"`,
		},
		{
			Input:     "output:\n  output_dir: /out\n",
			OutputErr: `output: fname_fmt must be set`,
		},
		{
			Input:     "output:\n  fname_fmt: \"{bogus}\"\n",
			OutputErr: `output: fname_fmt: unknown placeholder "bogus"`,
		},
		{
			Input: "output:\n  fname_fmt: x\nnetcdf:\n  encoding:\n    qual_flags:\n" +
				"      dtype: int16\n      _FillValue: -32769\n",
			OutputErr: `netcdf: encoding: qual_flags: _FillValue -32769 is not representable in int16`,
		},
		{
			Input: "output:\n  fname_fmt: x\nnetcdf:\n  encoding:\n    qual_flags:\n" +
				"      dtype: int16\n      _FillValue: -32767.5\n",
			OutputErr: `netcdf: encoding: qual_flags: _FillValue -32767.5 is not an integer but dtype is int16`,
		},
		{
			Input: "output:\n  fname_fmt: x\nnetcdf:\n  encoding:\n    qual_flags:\n" +
				"      dtype: int13\n",
			OutputErr: `netcdf: encoding: qual_flags: unknown dtype "int13"`,
		},
		{
			Input: "output:\n  fname_fmt: x\nnetcdf:\n  encoding:\n    qual_flags:\n" +
				"      zlib: true\n      complevel: 11\n",
			OutputErr: `netcdf: encoding: qual_flags: complevel 11 out of range 0..9`,
		},
		{
			Input: "output:\n  fname_fmt: x\nnetcdf:\n  encoding:\n    qual_flags:\n" +
				"      zlib: false\n      complevel: 4\n",
			OutputErr: `netcdf: encoding: qual_flags: complevel 4 given but zlib is off`,
		},
	}
	t.Parallel()
	for i, tc := range testcases {
		tc := tc
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Parallel()
			_, err := fdrconfig.Parse([]byte(tc.Input))
			assert.EqualError(t, err, tc.OutputErr)
		})
	}
}

func TestFillValueAtBound(t *testing.T) {
	t.Parallel()
	// Exactly at the dtype bound is valid.
	_, err := fdrconfig.Parse([]byte(
		"output:\n  fname_fmt: x\nnetcdf:\n  encoding:\n    v:\n" +
			"      dtype: int16\n      _FillValue: -32768\n"))
	assert.NoError(t, err)

	_, err = fdrconfig.Parse([]byte(
		"output:\n  fname_fmt: x\nnetcdf:\n  encoding:\n    v:\n" +
			"      dtype: uint8\n      _FillValue: 255\n"))
	assert.NoError(t, err)
}

func TestLoad(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	filename := filepath.Join(dir, "fdr.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(exampleConfig), 0o666))

	cfg, err := fdrconfig.Load(filename)
	require.NoError(t, err)
	assert.Equal(t, "/data/tle", cfg.Controls.ReaderKwargs.TLEDir)

	_, err = fdrconfig.Load(filepath.Join(dir, "no-such-file.yaml"))
	assert.Error(t, err)
}
