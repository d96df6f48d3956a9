package cli

import (
	"io"

	"github.com/alecthomas/kingpin/v2"
)

const (
	appName = "workloadparser"
	appHelp = "Replays a workload file against the order service, one HTTP request per line."
)

// Parse reads the workload path from the first positional argument. Later
// arguments are ignored and nothing is parsed as a flag, so paths such as
// "-w.txt" or "--help" are taken literally. On error the usage text has
// already been written to out.
func Parse(argv []string, out io.Writer) (string, error) {
	app := kingpin.New(appName, appHelp)
	app.UsageWriter(out)
	app.ErrorWriter(out)
	app.HelpFlag.Hidden()
	app.HelpFlag = nil

	workloadFile := app.Arg("workloadfile", "Path to the workload file.").Required().String()
	app.Arg("ignored", "Extra arguments, ignored.").Hidden().Strings()

	args := append([]string{"--"}, argv...)
	if _, err := app.Parse(args); err != nil {
		app.Errorf("%s", err)
		app.Usage(argv)
		return "", err
	}
	return *workloadFile, nil
}
