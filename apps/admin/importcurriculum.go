package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/academica/curricula/xlsx"
)

// importCurriculum loads a workbook into an existing curriculum. Warnings
// block the import unless force is set; preview never saves.
func (cli *commandLine) importCurriculum(code, path string, preview, force bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	tab, err := xlsx.Read(f)
	if err != nil {
		return err
	}

	courses, warnings, err := cli.crmSvc.Import(code, tab, false)
	if err != nil {
		return err
	}
	for _, warning := range warnings {
		fmt.Printf("warning: %s\n", warning)
	}

	if preview {
		fmt.Printf("%d courses decoded from %s (not saved)\n", len(courses), path)
		return nil
	}
	if len(warnings) > 0 && !force {
		return fmt.Errorf("%d warning(s) raised; re-run with -force to import anyway:\n  %s",
			len(warnings), strings.Join(warnings, "\n  "))
	}

	if _, _, err := cli.crmSvc.Import(code, tab, true); err != nil {
		return err
	}
	fmt.Printf("%d courses imported into %s\n", len(courses), code)
	return nil
}
