package launcher

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZettaAI/SEAMLeSS/config"
)

// ResolveEnv resolves a named conda-style environment under the given root
// and returns its bin directory.
func ResolveEnv(root, name string) (string, error) {
	prefix := filepath.Join(root, "envs", name)
	bin := filepath.Join(prefix, "bin")

	info, err := os.Stat(bin)
	if err != nil || !info.IsDir() {
		return "", &EnvironmentNotFoundError{Name: name, Path: prefix}
	}
	return bin, nil
}

// Environ builds the child process environment: the parent environment with
// the locale variables set and the runtime environment's bin directory
// prepended to PATH. The launcher's own environment is never mutated; the
// variables are injected into the child only.
func Environ(conf config.Launch, envBin string) []string {
	overrides := map[string]string{
		"LANGUAGE":          conf.Locale,
		"LANG":              conf.Locale,
		"LC_ALL":            conf.Locale,
		"CONDA_PREFIX":      filepath.Dir(envBin),
		"CONDA_DEFAULT_ENV": conf.CondaEnv,
	}

	var env []string
	pathSeen := false

	for _, kv := range os.Environ() {
		k := kv
		if i := strings.Index(kv, "="); i != -1 {
			k = kv[:i]
		}
		if k == "PATH" {
			env = append(env, "PATH="+envBin+string(os.PathListSeparator)+kv[len("PATH="):])
			pathSeen = true
			continue
		}
		if _, ok := overrides[k]; ok {
			continue
		}
		env = append(env, kv)
	}

	if !pathSeen {
		env = append(env, "PATH="+envBin)
	}
	for k, v := range overrides {
		env = append(env, k+"="+v)
	}
	return env
}
