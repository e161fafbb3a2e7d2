// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"encoding/json"
	"io"

	"github.com/contar-cli/contar/resolver"
)

// Output is the structured envelope written in JSON mode.
type Output struct {
	URL      string                 `json:"url"`
	Item     *resolver.PlayableItem `json:"item,omitempty"`
	Playlist *resolver.Playlist     `json:"playlist,omitempty"`
}

func writeJson(out io.Writer, url string, result *resolver.Result) error {
	data, err := json.Marshal(&Output{
		URL:      url,
		Item:     result.Item,
		Playlist: result.Playlist,
	})
	if err != nil {
		return err
	}

	_, err = out.Write(data)
	return err
}
