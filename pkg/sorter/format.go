package sorter

import (
	"bufio"
	"io"
	"strconv"

	"github.com/huynhanx03/go-snippets/pkg/common/apperr"
)

const component = "sorter"

// Sample returns a fresh copy of the demo input.
func Sample() []int {
	return []int{64, 34, 25, 12, 22, 11, 90}
}

// Format writes every element of s followed by a single space, then a newline.
func Format(w io.Writer, s []int) error {
	bw := bufio.NewWriter(w)
	for _, v := range s {
		bw.WriteString(strconv.Itoa(v))
		bw.WriteByte(' ')
	}
	bw.WriteByte('\n')
	if err := bw.Flush(); err != nil {
		return apperr.MapError(component, err, apperr.CodeIO, apperr.MsgWriteFailed)
	}
	return nil
}
