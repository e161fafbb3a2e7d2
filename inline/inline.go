// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"context"
	"fmt"
	"os"

	"github.com/contar-cli/contar/api"
	"github.com/contar-cli/contar/log"
	"github.com/contar-cli/contar/resolver"
	"github.com/contar-cli/contar/session"
	"github.com/contar-cli/contar/stream"
)

// Run resolves the requested page URL end to end and writes the outcome
// to the configured output: structured JSON, or one line per stream URL.
func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	request, err := resolver.ParseURL(options.URL)
	if err != nil {
		return err
	}

	sess := session.New()
	credentials, err := session.LoadCredentials()
	if err != nil {
		return err
	}

	client := api.New(sess)
	if err := client.Authenticate(ctx, credentials); err != nil {
		return err
	}

	result, err := resolver.New(client, stream.NewResolver()).Resolve(ctx, request)
	if err != nil {
		return err
	}

	return Write(options, result)
}

// Write renders an already resolved result according to the options.
func Write(options *Options, result *resolver.Result) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	if options.Json {
		return writeJson(options.Out, options.URL, result)
	}

	if result.Item != nil {
		return writeItem(options, result.Item)
	}

	for _, entry := range result.Playlist.Entries {
		if entry.IsDeferred() {
			fmt.Fprintln(options.Out, entry.Ref.URL)
			continue
		}

		if err := writeItem(options, entry.Item); err != nil {
			return err
		}
	}

	return nil
}

func writeItem(options *Options, item *resolver.PlayableItem) error {
	log.Info("Resolved " + item.Title)

	formats := item.Formats
	if options.FormatPicker.IsPresent() {
		picker := options.FormatPicker.MustGet()
		if choice := picker(formats); choice != nil {
			formats = []*stream.Format{choice}
		} else {
			formats = nil
		}
	}

	for _, format := range formats {
		fmt.Fprintln(options.Out, format.URL)
	}

	if options.Subtitles {
		for _, files := range item.Subtitles {
			for _, file := range files {
				fmt.Fprintln(options.Out, file.URL)
			}
		}
	}

	return nil
}
