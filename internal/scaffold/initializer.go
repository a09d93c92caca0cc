// Package scaffold creates a fresh needledrop project: the needledrop.yml
// configuration, a datasets/ directory with small sample CSV files, and the
// visuals/ output directory.
package scaffold

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed templates/*
var templatesFS embed.FS

// templates maps each embedded template to its destination path.
var templates = map[string]string{
	"templates/needledrop.yml.tmpl":             "needledrop.yml",
	"templates/grammy_awards.csv.tmpl":          filepath.Join("datasets", "grammy_awards.csv"),
	"templates/spotify_streaming_data.csv.tmpl": filepath.Join("datasets", "spotify_streaming_data.csv"),
	"templates/artist_lifetime_awards.csv.tmpl": filepath.Join("datasets", "artist_lifetime_awards.csv"),
	"templates/producers.csv.tmpl":              filepath.Join("datasets", "producers.csv"),
}

// CheckExisting returns an error when a needledrop.yml or datasets/
// directory already exists, so init does not silently clobber a project.
func CheckExisting() error {
	var existing []string
	if _, err := os.Stat("needledrop.yml"); err == nil {
		existing = append(existing, "needledrop.yml")
	}
	if info, err := os.Stat("datasets"); err == nil && info.IsDir() {
		existing = append(existing, "datasets/")
	}

	if len(existing) > 0 {
		msg := "project already initialized\n\nFound existing:"
		for _, f := range existing {
			msg += fmt.Sprintf("\n  - %s", f)
		}
		msg += "\n\nUse 'needledrop init --force' to reinitialize (this overwrites existing configuration)"
		return fmt.Errorf("%s", msg)
	}
	return nil
}

// Initialize creates the project structure. If force is true, existing
// needledrop.yml and sample datasets are overwritten.
func Initialize(force bool) error {
	if force {
		if _, err := os.Stat("needledrop.yml"); err == nil {
			fmt.Println("⚠ Overwriting existing needledrop.yml...")
		}
	}

	for _, dir := range []string{"datasets", "visuals"} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	for src, dst := range templates {
		content, err := templatesFS.ReadFile(src)
		if err != nil {
			return fmt.Errorf("failed to read template %s: %w", src, err)
		}
		if err := os.WriteFile(dst, content, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", dst, err)
		}
	}

	return validateCreatedConfig()
}

// validateCreatedConfig checks the written needledrop.yml parses as YAML.
func validateCreatedConfig() error {
	content, err := os.ReadFile("needledrop.yml")
	if err != nil {
		return fmt.Errorf("failed to read created needledrop.yml: %w", err)
	}

	var yamlData interface{}
	if err := yaml.Unmarshal(content, &yamlData); err != nil {
		return fmt.Errorf("created needledrop.yml is not valid YAML: %w", err)
	}
	return nil
}

// PrintSuccess prints the created files and suggested next steps.
func PrintSuccess() {
	fmt.Println("\n✓ Initialized needledrop project")
	fmt.Println("\nCreated:")
	fmt.Println("  needledrop.yml")
	fmt.Println("  datasets/grammy_awards.csv")
	fmt.Println("  datasets/spotify_streaming_data.csv")
	fmt.Println("  datasets/artist_lifetime_awards.csv")
	fmt.Println("  datasets/producers.csv")
	fmt.Println("  visuals/")
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Replace the sample CSVs under datasets/ with your data")
	fmt.Println("  2. Run 'needledrop analyze'")
}
