package conftree

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const debugLogFileSource = false

// FileSource reads configuration documents from a directory, one file per
// name: <dir>/<name>.json, <name>.yaml or <name>.yml, whichever exists
// first. Read and parse failures degrade to a nil answer, which Load treats
// as "nothing usable".
type FileSource struct {
	Dir string
}

func NewFileSource(dir string) *FileSource {
	return &FileSource{Dir: dir}
}

var fileSourceExts = []string{".json", ".yaml", ".yml"}

func (s *FileSource) Config(name string) any {
	for _, ext := range fileSourceExts {
		path := filepath.Join(s.Dir, name+ext)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var raw any
		if ext == ".json" {
			err = json.Unmarshal(data, &raw)
		} else {
			err = yaml.Unmarshal(data, &raw)
		}
		if err != nil {
			if debugLogFileSource {
				slog.Debug("conftree: failed to parse config file", "path", path, "err", err)
			}
			return nil
		}
		return raw
	}
	return nil
}
