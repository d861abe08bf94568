// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the robostripper CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the robostripper CLI.
var rootCmd = &cobra.Command{
	Use:   "robostripper",
	Short: "Strip scholarly-platform boilerplate from PDFs for listening",
	Long: `robostripper turns scholarly PDF downloads (JSTOR, ProQuest, EBSCO,
Duke University Press and the like) into clean text ready for a
text-to-speech reader. It removes cover-sheet legalese, download stamps,
repeated running headers and footers, and sequential page numbers, then
prepends a best-effort citation header so you know what you are hearing.

Scanned pages fall back to OCR when built with the "ocr" tag and
Tesseract is installed.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./robostripper.yaml or ~/.config/robostripper/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("robostripper")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "robostripper"))
		}
	}

	viper.SetEnvPrefix("ROBOSTRIPPER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
