package infra

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"

	"github.com/iamwavecut/modbot/internal/config"
)

// GetWorkDir resolves (and creates) a path under the configured dot
// directory.
func GetWorkDir(path ...string) string {
	base := config.Get().DotPath
	if base == "" {
		base = filepath.Join("~", ".modbot")
	}
	parts := append([]string{base}, path...)
	workDir, err := homedir.Expand(filepath.Join(parts...))
	if err != nil {
		log.Fatalln(err)
	}
	if err = os.MkdirAll(workDir, os.ModePerm); err != nil {
		log.Fatalln(err)
	}
	return workDir
}

func GetResourcesPath(path ...string) string {
	return filepath.Join(path...)
}
