package bio

import (
	"bufio"
	"io"
	"strings"
)

// Sequence is a type which is intended for storing nucleotide or
// protein sequence with it's name.
type Sequence struct {
	Name     string
	Sequence string
}

// Sequences stores multiple sequences, e.g. a FASTA dataset.
type Sequences []Sequence

// ParseFasta parses FASTA sequences from a reader. Sequence lines are
// concatenated, spaces are removed and letters are converted to
// uppercase.
func ParseFasta(rd io.Reader) (seqs Sequences, err error) {
	seqs = make(Sequences, 0, 10)
	scanner := bufio.NewScanner(rd)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			seq := Sequence{Name: strings.TrimSpace(line[1:])}
			seqs = append(seqs, seq)
		} else {
			if len(seqs) == 0 {
				return nil, ErrNoFastaLabel
			}
			line = strings.ToUpper(strings.Replace(line, " ", "", -1))
			seqs[len(seqs)-1].Sequence += line
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, err
	}
	log.Debugf("Read %d FASTA sequences", len(seqs))
	return
}

// Names returns sequence names in the dataset order.
func (seqs Sequences) Names() []string {
	names := make([]string, len(seqs))
	for i, seq := range seqs {
		names[i] = seq.Name
	}
	return names
}

// Strings returns sequence strings in the dataset order.
func (seqs Sequences) Strings() []string {
	s := make([]string, len(seqs))
	for i, seq := range seqs {
		s[i] = seq.Sequence
	}
	return s
}

// LineWidth is the maximum line length of FASTA output.
const LineWidth = 80

// Wrap splits seq into lines of at most width characters. Every line
// ends with a newline, empty seq gives an empty string.
func Wrap(seq string, width int) string {
	var b strings.Builder
	for len(seq) > width {
		b.WriteString(seq[:width])
		b.WriteByte('\n')
		seq = seq[width:]
	}
	if seq != "" {
		b.WriteString(seq)
		b.WriteByte('\n')
	}
	return b.String()
}

// String formats the record as FASTA.
func (seq Sequence) String() string {
	return ">" + seq.Name + "\n" + Wrap(seq.Sequence, LineWidth)
}

// String formats the dataset as FASTA without the final newline.
func (seqs Sequences) String() string {
	records := make([]string, len(seqs))
	for i, seq := range seqs {
		records[i] = seq.String()
	}
	return strings.TrimSuffix(strings.Join(records, ""), "\n")
}
