package main

import (
	"flag"
	"fmt"
	"os"
	"unicode/utf8"

	"k8s.io/klog"

	_ "github.com/semog/go-sqldb"
)

func main() {
	file := flag.String("file", "", "delimited ballot file to tabulate")
	delimiter := flag.String("delimiter", ",", "field delimiter used by the ballot file")
	dbfile := flag.String("db", "", "sqlite ballot archive")
	save := flag.Bool("save", false, "import the ballot file into the archive instead of tabulating")
	flag.Parse()

	klog.InitFlags(nil)
	if *file == "" && *dbfile == "" {
		klog.Fatal("file or db flag required.")
		os.Exit(2)
	}
	if *save && (*file == "" || *dbfile == "") {
		klog.Fatal("save flag requires both file and db flags.")
		os.Exit(2)
	}
	sep, size := utf8.DecodeRuneInString(*delimiter)
	if sep == utf8.RuneError || size != len(*delimiter) {
		klog.Fatalf("invalid delimiter %q: must be a single character.", *delimiter)
		os.Exit(2)
	}

	if err := run(*file, sep, *dbfile, *save); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
}

func run(file string, delimiter rune, dbfile string, save bool) error {
	var questions []*question
	var err error

	if file != "" {
		tbl, err := loadBallotFile(file, delimiter)
		if err != nil {
			return err
		}
		questions, err = splitQuestions(tbl)
		if err != nil {
			return err
		}
		klog.Infof("Loaded %d question(s) from %s", len(questions), file)
	}

	if dbfile != "" && (save || file == "") {
		var st Store = newSQLStore(dbfile)
		defer st.Close()

		if save {
			for _, q := range questions {
				id, err := st.SaveQuestion(q)
				if err != nil {
					return fmt.Errorf("could not archive question %q: %v", q.Label, err)
				}
				klog.Infof("Archived question %q as #%d (%d ballots)", q.Label, id, q.numBallots())
			}
			return nil
		}

		questions, err = st.GetQuestions()
		if err != nil {
			return err
		}
		klog.Infof("Loaded %d question(s) from archive %s", len(questions), dbfile)
	}

	for _, q := range questions {
		if q.numBallots() == 0 {
			klog.Infof("Skipping question %q: no ballots", q.Label)
			continue
		}
		t := tabulate(q)
		fmt.Print(renderTabulation(q, t))
	}
	return nil
}
