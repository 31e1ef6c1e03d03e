package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/numsum/errs"
	"github.com/arloliu/numsum/format"
	"github.com/arloliu/numsum/regression"
	"github.com/arloliu/numsum/stats"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	require.Equal(t, slog.LevelInfo, level)

	method, err := cfg.NormalizeMethod()
	require.NoError(t, err)
	require.Equal(t, stats.MethodZScore, method)

	outlier, err := cfg.OutlierMethod()
	require.NoError(t, err)
	require.Equal(t, stats.OutlierIQR, outlier)
	require.Equal(t, stats.DefaultIQRThreshold, cfg.OutlierThreshold(outlier))

	models, err := cfg.ModelTypes()
	require.NoError(t, err)
	require.Nil(t, models)

	enc, err := cfg.ValueEncoding()
	require.NoError(t, err)
	require.Equal(t, format.TypeGorilla, enc)

	comp, err := cfg.Compression()
	require.NoError(t, err)
	require.Equal(t, format.CompressionNone, comp)
}

func TestParse(t *testing.T) {
	data := []byte(`
log_level: debug
normalize:
  method: minmax
outliers:
  method: zscore
  threshold: 2.5
regression:
  models: [linear, Power]
  min_r_squared: 0.8
blob:
  encoding: raw
  compression: zstd
  big_endian: true
`)

	cfg, err := Parse(data)
	require.NoError(t, err)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, level)

	method, err := cfg.NormalizeMethod()
	require.NoError(t, err)
	require.Equal(t, stats.MethodMinMax, method)

	outlier, err := cfg.OutlierMethod()
	require.NoError(t, err)
	require.Equal(t, stats.OutlierZScore, outlier)
	require.Equal(t, 2.5, cfg.OutlierThreshold(outlier))

	models, err := cfg.ModelTypes()
	require.NoError(t, err)
	require.Equal(t, []regression.ModelType{regression.ModelTypeLinear, regression.ModelTypePower}, models)
	require.Equal(t, 0.8, cfg.Regression.MinRSquared)

	enc, err := cfg.ValueEncoding()
	require.NoError(t, err)
	require.Equal(t, format.TypeRaw, enc)

	comp, err := cfg.Compression()
	require.NoError(t, err)
	require.Equal(t, format.CompressionZstd, comp)
	require.True(t, cfg.Blob.BigEndian)
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("blob:\n  compression: lz4\n"))
	require.NoError(t, err)

	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "zscore", cfg.Normalize.Method)
	require.Equal(t, "gorilla", cfg.Blob.Encoding)
	require.Equal(t, "lz4", cfg.Blob.Compression)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"yaml", "log_level: [", "invalid YAML"},
		{"log level", "log_level: loud", "log_level"},
		{"normalize method", "normalize:\n  method: l2\n", "normalize.method"},
		{"outlier method", "outliers:\n  method: mad\n", "outliers.method"},
		{"threshold", "outliers:\n  threshold: -1\n", "outliers.threshold"},
		{"models", "regression:\n  models: [cubic]\n", "regression.models"},
		{"min r2", "regression:\n  min_r_squared: 1.5\n", "min_r_squared"},
		{"encoding", "blob:\n  encoding: delta\n", "blob.encoding"},
		{"compression", "blob:\n  compression: gzip\n", "blob.compression"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Normalize.Method = "bogus"
	cfg.Blob.Compression = "bogus"

	err := cfg.Validate()
	require.ErrorIs(t, err, errs.ErrUnknownMethod)
	require.Contains(t, err.Error(), "normalize.method")
	require.Contains(t, err.Error(), "blob.compression")
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "numsum.yaml")
	require.NoError(t, os.WriteFile(path, []byte("normalize:\n  method: minmax\n"), 0o600))

	cfg, err = Load(path)
	require.NoError(t, err)
	require.Equal(t, "minmax", cfg.Normalize.Method)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
