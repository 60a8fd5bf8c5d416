package commands

import (
	"embed"
	"io/fs"

	"github.com/arthur-debert/dotlink/pkg/cobrax/topics"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// conventionsTopic is the topic the conventions command prints.
const conventionsTopic = "conventions"

func newTopicManager() (*topics.TopicManager, error) {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return nil, err
	}

	var renderer topics.Renderer = &topics.PlainRenderer{}
	if stdoutIsTerminal() {
		renderer = topics.NewGlamourRenderer()
	}
	return topics.New(sub, topics.Options{
		Extensions: []string{".md"},
		Renderer:   renderer,
	})
}

func newConventionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "conventions",
		Short:   MsgConventionsShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tm, err := newTopicManager()
			if err != nil {
				return err
			}
			return tm.PrintTopic(cmd.OutOrStdout(), conventionsTopic)
		},
	}
}
