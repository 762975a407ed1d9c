package gear

import (
	"strconv"
	"strings"
)

// The payment gateway round-trips the cart through a single flat "custom"
// field: name|quantity|size| repeated per line, with a trailing separator.

const payloadSep = "|"

type PayloadItem struct {
	Name     string
	Quantity int
	Size     string
}

func EncodePayload(c Cart) string {
	var b strings.Builder
	for _, l := range c.Lines {
		b.WriteString(l.Name)
		b.WriteString(payloadSep)
		b.WriteString(strconv.Itoa(l.Quantity))
		b.WriteString(payloadSep)
		b.WriteString(l.Size)
		b.WriteString(payloadSep)
	}
	return b.String()
}

// DecodePayload parses the custom field back into triplets. The trailing
// separator's empty token is dropped before counting; anything that is not a
// whole number of triplets, or a quantity that does not parse, fails with
// ErrMalformedPayload.
func DecodePayload(s string) ([]PayloadItem, error) {
	if s == "" {
		return nil, nil
	}

	tokens := strings.Split(s, payloadSep)
	if n := len(tokens); n > 0 && tokens[n-1] == "" {
		tokens = tokens[:n-1]
	}
	if len(tokens)%3 != 0 {
		return nil, ErrMalformedPayload
	}

	items := make([]PayloadItem, 0, len(tokens)/3)
	for i := 0; i < len(tokens); i += 3 {
		quantity, err := strconv.Atoi(tokens[i+1])
		if err != nil || quantity < 1 {
			return nil, ErrMalformedPayload
		}
		items = append(items, PayloadItem{
			Name:     tokens[i],
			Quantity: quantity,
			Size:     tokens[i+2],
		})
	}
	return items, nil
}
