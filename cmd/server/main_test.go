package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintSummary(t *testing.T) {
	color.NoColor = true

	configPath = filepath.Join(t.TempDir(), "missing.yaml")
	datasetPath = ""
	cfg, err := loadConfig(serveCmd.Flags())
	require.NoError(t, err)
	dash, err := loadDashboard(cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	printSummary(&buf, dash)
	out := buf.String()
	assert.Contains(t, out, "94 rows, 47 countries, 5 continents")
	assert.Contains(t, out, "Africa, Americas, Asia, Europe, Oceania")
	assert.Contains(t, out, "1952, 2007")
	assert.Contains(t, out, "GDP per Capita")
}

func TestLoadDashboard_MissingDataset(t *testing.T) {
	configPath = ""
	datasetPath = filepath.Join(t.TempDir(), "nope.csv")
	defer func() { datasetPath = "" }()

	cfg, err := loadConfig(serveCmd.Flags())
	require.NoError(t, err)
	_, err = loadDashboard(cfg)
	assert.ErrorContains(t, err, "missing data")
}

func TestLoadDashboard_DefaultsOutsideDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "europe.csv")
	csv := "country,continent,year,lifeExp,pop,gdpPercap,iso_alpha,iso_num\n" +
		"France,Europe,2007,80.657,61083916,30470.0167,FRA,250\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o600))
	configPath = ""
	datasetPath = path
	defer func() { datasetPath = "" }()

	cfg, err := loadConfig(serveCmd.Flags())
	require.NoError(t, err)
	_, err = loadDashboard(cfg)
	require.Error(t, err)
	assert.ErrorContains(t, err, "defaults do not match dataset")
	assert.ErrorContains(t, err, "continent")
	assert.ErrorContains(t, err, "1952")
}

func TestLoadConfig_FileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":9999\"\nlog_format: text\n"), 0o600))
	configPath = path
	defer func() { configPath = "" }()

	cfg, err := loadConfig(serveCmd.Flags())
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Addr)

	require.NoError(t, serveCmd.Flags().Set("addr", ":7777"))
	cfg, err = loadConfig(serveCmd.Flags())
	require.NoError(t, err)
	assert.Equal(t, ":7777", cfg.Addr)
}
