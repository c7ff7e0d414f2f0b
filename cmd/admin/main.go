package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"headsup-analyzer/internal/config"
	"headsup-analyzer/pkg/db"
	"headsup-analyzer/pkg/rangestore"
)

var command = flag.String("c", "list", "specifies the command (import, list)")
var file = flag.String("f", "", "the range file to import (defaults to the configured ranges file)")
var yes = flag.Bool("y", false, "don't ask for confirmation")

func main() {
	flag.Parse()

	cfg := config.Instance()
	if err := config.SetupLogger(cfg); err != nil {
		logrus.WithError(err).Fatal("could not set up logger")
	}

	ctx := context.Background()
	dbh := db.Instance()
	if err := db.Migrate(dbh, cfg.MigrationsPath); err != nil {
		logrus.WithError(err).Fatal("could not run migrations")
	}

	switch *command {
	case "import":
		path := *file
		if path == "" {
			path = cfg.RangesFile
		}

		records, err := rangestore.ReadFile(path)
		if err != nil {
			logrus.WithError(err).Fatal("could not read range file")
		}

		fmt.Printf("Found %d patterns in %s\n", len(records), path)

		if !*yes && term.IsTerminal(int(os.Stdin.Fd())) {
			answer, err := getInput("Replace stored patterns with the same name (Y/n)")
			if err != nil {
				logrus.WithError(err).Fatal("could not get answer")
			}

			if answer != "" && strings.ToLower(answer)[0] != 'y' {
				fmt.Println("Aborted")
				return
			}
		}

		if err := rangestore.SaveRecords(ctx, dbh, records); err != nil {
			logrus.WithError(err).Fatal("could not save patterns")
		}

		fmt.Printf("Imported %d patterns\n", len(records))

	case "list":
		records, err := rangestore.ReadPostgres(ctx, dbh)
		if err != nil {
			logrus.WithError(err).Fatal("could not read patterns")
		}

		data := pterm.TableData{{"Name", "Action", "Me", "Opponent", "Hands"}}
		for _, r := range records {
			data = append(data, []string{r.Name, r.Action, r.Me, r.Opponent, r.Hands})
		}

		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			logrus.WithError(err).Fatal("could not render patterns")
		}

	default:
		logrus.Fatalf("unknown command: %s", *command)
	}
}

func getInput(question string) (string, error) {
	fmt.Printf("%s: ", question)
	reader := bufio.NewReader(os.Stdin)
	str, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	str = strings.TrimRight(str, "\r\n")

	return str, nil
}
