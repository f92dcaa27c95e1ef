// Package clipboard wraps system clipboard access for the Copy button.
package clipboard

import (
	"golang.design/x/clipboard"
)

func Init() error {
	return clipboard.Init()
}

func Write(text string) {
	clipboard.Write(clipboard.FmtText, []byte(text))
}
