package cnf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/YuriBrandi/SudokuSAT/internal/ioutils"
)

// WriteTo writes the instance in the DIMACS CNF interchange format: a
// "p cnf <vars> <clauses>" header line, then one line per clause listing
// its literals, 0-terminated. This is the form SAT engines and the CLI
// export consume.
func (ins *Instance) WriteTo(w io.Writer) (int64, error) {
	cw := &ioutils.WriterCounter{W: w}
	bw := bufio.NewWriterSize(cw, 1<<16)

	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", ins.nbVars, len(ins.clauses)); err != nil {
		return cw.N, err
	}
	line := make([]byte, 0, 64)
	for _, clause := range ins.clauses {
		line = line[:0]
		for _, lit := range clause {
			line = strconv.AppendInt(line, int64(lit), 10)
			line = append(line, ' ')
		}
		line = append(line, '0', '\n')
		if _, err := bw.Write(line); err != nil {
			return cw.N, err
		}
	}
	err := bw.Flush()
	return cw.N, err
}
