package cmd_test

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"go.followtheprocess.codes/msg"
	"go.followtheprocess.codes/quill/internal/cmd"
	"go.followtheprocess.codes/test"
)

var update = flag.Bool("update", false, "Update testscript scripts")

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"quill": func() {
			command, err := cmd.Build()
			if err == nil {
				err = command.Execute(context.Background())
			}

			if err != nil {
				msg.Ferror(os.Stderr, "%v", err)
				os.Exit(1) //nolint:revive // redundant-test-main-exit, this is testscript main
			}
		},
	})
}

func TestSmoke(t *testing.T) {
	_, err := cmd.Build()
	test.Ok(t, err)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:                 filepath.Join("testdata", "scripts"),
		UpdateScripts:       *update,
		RequireExplicitExec: true,
		RequireUniqueNames:  true,
	})
}
