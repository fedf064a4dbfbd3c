package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/kestrelsec/wordlex/filter"
)

func findCommand(t *testing.T, app *cli.App, name string) *cli.Command {
	t.Helper()
	for _, cmd := range app.Commands {
		if cmd.Name == name {
			return cmd
		}
	}
	t.Fatalf("command %q not found", name)
	return nil
}

func stringFlag(t *testing.T, cmd *cli.Command, name string) *cli.StringFlag {
	t.Helper()
	for _, flag := range cmd.Flags {
		if f, ok := flag.(*cli.StringFlag); ok && f.Name == name {
			return f
		}
	}
	t.Fatalf("string flag %q not found", name)
	return nil
}

func intFlag(t *testing.T, cmd *cli.Command, name string) *cli.IntFlag {
	t.Helper()
	for _, flag := range cmd.Flags {
		if f, ok := flag.(*cli.IntFlag); ok && f.Name == name {
			return f
		}
	}
	t.Fatalf("int flag %q not found", name)
	return nil
}

func float64Flag(t *testing.T, cmd *cli.Command, name string) *cli.Float64Flag {
	t.Helper()
	for _, flag := range cmd.Flags {
		if f, ok := flag.(*cli.Float64Flag); ok && f.Name == name {
			return f
		}
	}
	t.Fatalf("float64 flag %q not found", name)
	return nil
}

func TestExpandCommandFlags(t *testing.T) {
	cmd := findCommand(t, newApp(), "expand")

	t.Run("db is required", func(t *testing.T) {
		dbFlag := stringFlag(t, cmd, "db")
		assert.True(t, dbFlag.Required)
		assert.Contains(t, dbFlag.Aliases, "d")
	})

	t.Run("top-k defaults to 5", func(t *testing.T) {
		assert.Equal(t, 5, intFlag(t, cmd, "top-k").Value)
	})

	t.Run("similarity-threshold defaults to 0.5", func(t *testing.T) {
		assert.Equal(t, 0.5, float64Flag(t, cmd, "similarity-threshold").Value)
	})

	t.Run("num-words defaults to 50", func(t *testing.T) {
		assert.Equal(t, 50, intFlag(t, cmd, "num-words").Value)
	})

	t.Run("rerank-weight defaults to 0.3", func(t *testing.T) {
		assert.Equal(t, 0.3, float64Flag(t, cmd, "rerank-weight").Value)
	})

	t.Run("embedding-host has local default", func(t *testing.T) {
		assert.Equal(t, "http://localhost:11434/v1", stringFlag(t, cmd, "embedding-host").Value)
	})
}

func TestImportCommandFlags(t *testing.T) {
	cmd := findCommand(t, newApp(), "import")

	t.Run("db is required", func(t *testing.T) {
		assert.True(t, stringFlag(t, cmd, "db").Required)
	})

	t.Run("batch-size defaults to 64", func(t *testing.T) {
		assert.Equal(t, 64, intFlag(t, cmd, "batch-size").Value)
	})
}

func TestExpandCommandValidation(t *testing.T) {
	t.Run("missing db flag fails", func(t *testing.T) {
		err := newApp().Run([]string{"wordlex", "expand", "password"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db")
	})

	t.Run("bad filter fails before opening the store", func(t *testing.T) {
		err := newApp().Run([]string{
			"wordlex", "expand",
			"--db", filepath.Join(t.TempDir(), "never-created"),
			"--filter", "frobnicates=yes",
			"password",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, filter.ErrUnknownPredicate)
	})
}

func TestCollectSeeds(t *testing.T) {
	t.Run("bare words pass through", func(t *testing.T) {
		seeds, err := collectSeeds([]string{"password", "admin"})
		require.NoError(t, err)
		assert.Equal(t, []string{"password", "admin"}, seeds)
	})

	t.Run("file arguments are expanded", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seeds.txt")
		require.NoError(t, os.WriteFile(path, []byte("password\nadmin\n\nlogin\n"), 0644))

		seeds, err := collectSeeds([]string{path, "extra"})
		require.NoError(t, err)
		assert.Equal(t, []string{"password", "admin", "login", "extra"}, seeds)
	})

	t.Run("nonexistent path is a word", func(t *testing.T) {
		seeds, err := collectSeeds([]string{"/no/such/file"})
		require.NoError(t, err)
		assert.Equal(t, []string{"/no/such/file"}, seeds)
	})
}

func TestWriteWords(t *testing.T) {
	t.Run("one word per line with trailing newline", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		require.NoError(t, writeWords([]string{"admin", "password"}, path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "admin\npassword\n", string(data))
	})

	t.Run("empty list writes nothing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		require.NoError(t, writeWords(nil, path))

		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})
}

func TestSetupLogger(t *testing.T) {
	run := func(level string) error {
		app := &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "log-level",
					Value: "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error {
				return nil
			},
		}
		return app.Run([]string{"test", "--log-level", level})
	}

	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			t.Run(level, func(t *testing.T) {
				require.NoError(t, run(level))
			})
		}
	})

	t.Run("case insensitive log levels", func(t *testing.T) {
		for _, level := range []string{"DEBUG", "Info", "WaRn", "ERROR"} {
			t.Run(level, func(t *testing.T) {
				require.NoError(t, run(level))
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		err := run("invalid")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}
