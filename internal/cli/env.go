package cli

import (
	"path/filepath"

	"smoke-env/internal/config"
	"smoke-env/internal/dotenv"
)

// envFilePath returns the configured .env path, or the nearest .env above
// the start directory. The empty string means none was found. A relative
// --env-file is taken from the start directory; config paths arrive absolute.
func (o *options) envFilePath() string {
	if o.cfg.EnvFile != "" {
		if filepath.IsAbs(o.cfg.EnvFile) {
			return o.cfg.EnvFile
		}
		return filepath.Join(o.dir, o.cfg.EnvFile)
	}
	path, ok := dotenv.FindUpwards(o.dir, config.DotenvName)
	if !ok {
		return ""
	}
	return path
}

// loadFileEnv parses the .env file. A missing discovered file yields an
// empty map; a missing configured file is an error.
func (o *options) loadFileEnv() (map[string]string, error) {
	path := o.envFilePath()
	if path == "" {
		o.logger.Debug("no .env file found", "start", o.dir)
		return map[string]string{}, nil
	}

	result, err := dotenv.ParseFile(path)
	if err != nil {
		return nil, err
	}
	for _, line := range result.Malformed {
		o.logger.Warn("skipped line without '='", "file", path, "line", line)
	}
	for _, key := range result.Duplicates {
		o.logger.Debug("duplicate key overrides earlier value", "file", path, "key", key)
	}
	o.logger.Debug("loaded .env", "file", path, "entries", len(result.Entries))

	return result.Entries, nil
}

// loadEnv returns the .env entries with exported variables applied on top.
func (o *options) loadEnv() (map[string]string, error) {
	env, err := o.loadFileEnv()
	if err != nil {
		return nil, err
	}
	if o.ignoreOS {
		return env, nil
	}
	return dotenv.Overlay(env, dotenv.Environ()), nil
}
