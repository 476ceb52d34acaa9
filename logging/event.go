package logging

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"time"
)

var logger = log.New(os.Stdout, "", log.LstdFlags|log.Lshortfile)

// SetOutput redirects event lines, mainly for tests.
func SetOutput(l *log.Logger) {
	logger = l
}

// Event logs one line: [event] userID=... key=value ...
// Keys are written in sorted order.
func Event(event string, userID string, details map[string]interface{}) {
	var b strings.Builder
	b.WriteString("[" + event + "]")
	if userID != "" {
		b.WriteString(" userID=" + userID)
	}

	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(" " + k + "=" + formatValue(details[k]))
	}
	_ = logger.Output(2, b.String())
}

func formatValue(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case error:
		return t.Error()
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", t)
	}
}
