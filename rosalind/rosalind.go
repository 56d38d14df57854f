/*
Rosalind solves small bioinformatics problems: RNA translation,
counting of source mRNAs for a protein, protein mass and a number of
DNA helpers.

The basic usage looks like this:

	rosalind prot rna.txt

, this will translate RNA from rna.txt into the protein. Input is
read from the standard input if no file is specified:

	echo SKADYEK | rosalind prtm

To see all the commands run:

	rosalind --help
*/
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/op/go-logging"
	"gonum.org/v1/plot/vg"
	"gopkg.in/alecthomas/kingpin.v2"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("rosalind")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	// application
	app = kingpin.New("rosalind", "solutions for bioinformatics problems").Version(version)

	// core
	protCmd   = app.Command("prot", "translate RNA into protein")
	protFile  = protCmd.Arg("file", "RNA file (stdin by default)").Default("-").String()
	protFasta = protCmd.Flag("fasta", "read RNA records and write proteins in FASTA format").Bool()
	mrnaCmd   = app.Command("mrna", "number of mRNAs the protein could be translated from (modulo 1000000)")
	mrnaFile  = mrnaCmd.Arg("file", "protein file (stdin by default)").Default("-").String()
	prtmCmd   = app.Command("prtm", "monoisotopic protein mass")
	prtmFile  = prtmCmd.Arg("file", "protein file (stdin by default)").Default("-").String()

	// DNA
	dnaCmd   = app.Command("dna", "count DNA nucleotides")
	dnaFile  = dnaCmd.Arg("file", "DNA file (stdin by default)").Default("-").String()
	rnaCmd   = app.Command("rna", "transcribe DNA into RNA")
	rnaFile  = rnaCmd.Arg("file", "DNA file (stdin by default)").Default("-").String()
	revcCmd  = app.Command("revc", "reverse complement DNA")
	revcFile = revcCmd.Arg("file", "DNA file (stdin by default)").Default("-").String()
	hammCmd  = app.Command("hamm", "Hamming distance between two DNA strings")
	hammFile = hammCmd.Arg("file", "file with two DNA strings (stdin by default)").Default("-").String()
	subsCmd  = app.Command("subs", "locations of a motif in DNA")
	subsFile = subsCmd.Arg("file", "file with DNA and motif strings (stdin by default)").Default("-").String()
	gcCmd    = app.Command("gc", "sequence with the highest GC content")
	gcFile   = gcCmd.Arg("file", "FASTA file (stdin by default)").Default("-").String()
	consCmd  = app.Command("cons", "consensus string and profile")
	consFile = consCmd.Arg("file", "FASTA file (stdin by default)").Default("-").String()

	// plot
	gcplotCmd    = app.Command("gcplot", "plot GC content of FASTA sequences")
	gcplotFile   = gcplotCmd.Arg("file", "FASTA file (stdin by default)").Default("-").String()
	gcplotOut    = gcplotCmd.Flag("out", "output image (png, svg, pdf or eps)").Default("gc.png").String()
	gcplotWidth  = gcplotCmd.Flag("width", "image width in inches").Default("6").Float64()
	gcplotHeight = gcplotCmd.Flag("height", "image height in inches").Default("4").Float64()

	// probability
	iprbCmd = app.Command("iprb", "probability of an offspring with a dominant allele")
	iprbK   = iprbCmd.Arg("k", "number of homozygous dominant organisms").Required().Int()
	iprbM   = iprbCmd.Arg("m", "number of heterozygous organisms").Required().Int()
	iprbN   = iprbCmd.Arg("n", "number of homozygous recessive organisms").Required().Int()
	liaCmd  = app.Command("lia", "probability of at least N AaBb organisms in generation k")
	liaK    = liaCmd.Arg("k", "generation").Required().Int()
	liaN    = liaCmd.Arg("N", "minimum number of AaBb organisms").Required().Int()
	ievCmd  = app.Command("iev", "expected number of offspring with a dominant phenotype")
	ievN    = ievCmd.Arg("couples", "number of AA-AA, AA-Aa, AA-aa, Aa-Aa, Aa-aa and aa-aa couples").Required().Ints()
	fibCmd  = app.Command("fib", "rabbit pairs after n months")
	fibN    = fibCmd.Arg("n", "number of months").Required().Int()
	fibK    = fibCmd.Arg("k", "pairs of offspring per mature pair").Required().Int()

	// input/output
	outLogF  = app.Flag("log", "write log to a file").String()
	logLevel = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")
	jsonF = app.Flag("json", "write json output to a file").String()
)

// run executes the command and returns its output.
func run(command string) (string, error) {
	switch command {
	case protCmd.FullCommand():
		if *protFasta {
			return withInput(*protFile, translateFasta)
		}
		return withInput(*protFile, translate)
	case mrnaCmd.FullCommand():
		return withInput(*mrnaFile, countSourceRNA)
	case prtmCmd.FullCommand():
		return withInput(*prtmFile, proteinMass)
	case dnaCmd.FullCommand():
		return withInput(*dnaFile, countNucleotides)
	case rnaCmd.FullCommand():
		return withInput(*rnaFile, transcribe)
	case revcCmd.FullCommand():
		return withInput(*revcFile, reverseComplement)
	case hammCmd.FullCommand():
		return withInput(*hammFile, hammingDistance)
	case subsCmd.FullCommand():
		return withInput(*subsFile, motifLocations)
	case gcCmd.FullCommand():
		return withInput(*gcFile, bestGCContent)
	case consCmd.FullCommand():
		return withInput(*consFile, consensus)
	case gcplotCmd.FullCommand():
		return withInput(*gcplotFile, func(input string) (string, error) {
			return gcPlot(input, *gcplotOut,
				vg.Length(*gcplotWidth)*vg.Inch, vg.Length(*gcplotHeight)*vg.Inch)
		})
	case iprbCmd.FullCommand():
		return dominantAllele(*iprbK, *iprbM, *iprbN)
	case liaCmd.FullCommand():
		return independentAlleles(*liaK, *liaN)
	case ievCmd.FullCommand():
		return expectedOffspring(*ievN)
	case fibCmd.FullCommand():
		return rabbits(*fibN, *fibK)
	}
	return "", fmt.Errorf("unknown command: %s", command)
}

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	// logging
	logging.SetFormatter(formatter)

	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		defer f.Close()
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLevel(level, "rosalind")
	logging.SetLevel(level, "bio")
	logging.SetLevel(level, "dna")

	// print revision
	log.Info(version)

	// print commandline
	log.Info("Command line:", os.Args)

	startTime := time.Now()
	result, err := run(command)
	if err != nil {
		log.Fatalf("%s: %v", command, err)
	}
	if result != "" {
		fmt.Println(result)
	}
	deltaT := time.Since(startTime)
	log.Infof("Running time: %v", deltaT)

	// output summary in json format
	if *jsonF != "" {
		summary := &RunSummary{
			Version:     version,
			CommandLine: os.Args,
			Command:     command,
			Result:      result,
			Time:        deltaT.Seconds(),
		}
		if err := summary.WriteFile(*jsonF); err != nil {
			log.Error("Error writing json output file:", err)
		}
	}
}
