package config

import (
	"errors"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// DefaultFile is loaded by the driver when no config path is given.
const DefaultFile = "minic.cue"

type Config struct {
	LabelPrefix string `json:"labelPrefix,omitempty"`
	Emit        string `json:"emit,omitempty"`     // tokens, ast or asm
	LogLevel    string `json:"logLevel,omitempty"` // debug, info, warn or error
	Run         bool   `json:"run,omitempty"`
	MaxSteps    int    `json:"maxSteps,omitempty"`
	Output      string `json:"output,omitempty"` // File to write asm to, stdout if empty
}

const schema = `
labelPrefix?: =~"^[A-Za-z_.][A-Za-z0-9_.]*$"
emit?: "tokens" | "ast" | "asm"
logLevel?: "debug" | "info" | "warn" | "error"
run?: bool
maxSteps?: int & >0
output?: string
`

func Default() Config {
	return Config{
		LabelPrefix: "L",
		Emit:        "asm",
		LogLevel:    "info",
		MaxSteps:    1_000_000,
	}
}

// Load reads the given cue files in order on top of the default config.
// Later files override fields set by earlier ones. Each file is validated
// against a closed schema, so unknown fields are an error.
func Load(filePaths ...string) (Config, error) {
	cfg := Default()

	ctx := cuecontext.New()
	schemaValue := ctx.CompileString("close({" + schema + "})")
	if err := schemaValue.Err(); err != nil {
		return cfg, err
	}

	for _, filePath := range filePaths {
		content, err := os.ReadFile(filePath)
		if err != nil {
			return cfg, err
		}

		value := ctx.CompileBytes(
			content,
			cue.Filename(filePath),
		)
		if err := value.Err(); err != nil {
			return cfg, err
		}

		value = schemaValue.Unify(value)
		if err := value.Validate(cue.Concrete(true)); err != nil {
			return cfg, err
		}

		if err := value.Decode(&cfg); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

// LoadDefault loads DefaultFile from the working directory if it exists.
func LoadDefault() (Config, error) {
	if _, err := os.Stat(DefaultFile); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return Load(DefaultFile)
}
