package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goliatone/go-portfolio/cmd/static/internal/bootstrap"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runStatic(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("static paths: %v", err)
	}
}

func runStatic(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("static-paths", flag.ExitOnError)
	contentDir := fs.String("content-dir", "", "Path to the markdown content root (defaults to ./content)")
	blogDir := fs.String("blog-dir", "", "Blog directory, relative to the content root")
	projectDir := fs.String("project-dir", "", "Projects directory, relative to the content root")
	driver := fs.String("driver", "", "Database driver: postgres or sqlite (empty disables the database source)")
	dsn := fs.String("dsn", "", "Database connection string")
	envFile := fs.String("env-file", "", "Dotenv file to load before reading the environment")
	out := fs.String("out", "", "Write the path manifest to this file instead of stdout")
	logLevel := fs.String("log-level", "", "Log level: trace, debug, info, warn, error")
	logFormat := fs.String("log-format", "", "Log format: json, console, pretty")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		EnvFile:    *envFile,
		ContentDir: *contentDir,
		BlogDir:    *blogDir,
		ProjectDir: *projectDir,
		Driver:     *driver,
		DSN:        *dsn,
		LogLevel:   *logLevel,
		LogFormat:  *logFormat,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	defer module.Close()

	paths, err := module.StaticPaths(context.Background())
	if err != nil {
		return fmt.Errorf("enumerate static paths: %w", err)
	}

	encoded, err := json.MarshalIndent(paths, "", "  ")
	if err != nil {
		return fmt.Errorf("encode static paths: %w", err)
	}
	encoded = append(encoded, '\n')

	if *out != "" {
		if err := os.WriteFile(*out, encoded, 0o644); err != nil {
			return fmt.Errorf("write manifest: %w", err)
		}
		fmt.Fprintf(stdout, "static path manifest written to %s\n", *out)
		return nil
	}

	_, err = stdout.Write(encoded)
	return err
}
