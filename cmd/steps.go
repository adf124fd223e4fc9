package cmd

import (
	"os"
	"path/filepath"

	"github.com/runforge/runforge/runtime"
	"github.com/runforge/runforge/step"
	"github.com/runforge/runforge/util"
)

// defaultRegistry wires the built-in pipeline steps. Projects embedding
// the engine as a library register their own descriptors instead.
func defaultRegistry() (*step.Registry, error) {
	registry := step.NewRegistry()

	if err := registry.Register("1", &step.Descriptor{
		Fn:            surveyInputs,
		TitleTemplate: "Surveying inputs ({{.release}} release run: {{.output_path}})",
		ListItem:      "survey input folder",
	}); err != nil {
		return nil, err
	}

	if err := registry.Register("2", &step.Descriptor{
		Fn:            measureFolder,
		TitleTemplate: "Measuring working folders",
		IsMulti:       true,
		MultiParam:    "folder",
		MultiOptions:  []interface{}{"input", "output", "tmp"},
		ListItem:      "measure working folders",
	}); err != nil {
		return nil, err
	}

	return registry, nil
}

// surveyInputs lists the input folder so the manifest records what the
// run started from.
func surveyInputs(ctx *runtime.RunContext, args util.Data) (interface{}, error) {
	entries, err := os.ReadDir("input")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return map[string]interface{}{"files": names, "count": len(names)}, nil
}

// measureFolder reports the total size of one working folder; it fans out
// over the folder list.
func measureFolder(ctx *runtime.RunContext, args util.Data) (interface{}, error) {
	folder, _ := args["folder"].(string)

	var total int64
	err := filepath.WalkDir(folder, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		total += info.Size()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"folder": folder, "bytes": total}, nil
}
