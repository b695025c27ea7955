package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// WriteTour emits tour one vertex per line, or NotEulerian when tour is empty.
func WriteTour(w io.Writer, tour []int) error {
	bw := bufio.NewWriter(w)
	if len(tour) == 0 {
		bw.WriteString(NotEulerian + "\n")
		return bw.Flush()
	}
	var buf []byte
	for _, v := range tour {
		buf = strconv.AppendInt(buf[:0], int64(v), 10)
		buf = append(buf, '\n')
		bw.Write(buf)
	}

	return bw.Flush()
}

// WriteTourFile writes tour to path, truncating an existing file.
func WriteTourFile(path string, tour []int) error {
	return writeFile("WriteTourFile", path, func(w io.Writer) error { return WriteTour(w, tour) })
}

// ReadTour parses the tour output format. ok is false when the input is the
// NotEulerian marker.
func ReadTour(r io.Reader) (tour []int, ok bool, err error) {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if text == NotEulerian {
			if len(tour) > 0 {
				return nil, false, fmt.Errorf("ReadTour: line %d: marker after vertices: %w", line, ErrMalformed)
			}
			return nil, false, nil
		}
		v, err := strconv.Atoi(text)
		if err != nil {
			return nil, false, fmt.Errorf("ReadTour: line %d: %v: %w", line, err, ErrMalformed)
		}
		tour = append(tour, v)
	}
	if err = sc.Err(); err != nil {
		return nil, false, fmt.Errorf("ReadTour: %w", err)
	}

	return tour, len(tour) > 0, nil
}

// writeFile creates path and hands it to fn; errors carry op and path.
func writeFile(op, path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%s(%s): %w", op, path, err)
	}
	if err = fn(f); err != nil {
		f.Close()
		return fmt.Errorf("%s(%s): %w", op, path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%s(%s): %w", op, path, err)
	}

	return nil
}
