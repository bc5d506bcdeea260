package main

import (
	"fmt"

	"github.com/lox/monkeystud/internal/bot"
)

// BotsCmd lists the agent registry.
type BotsCmd struct{}

func (c *BotsCmd) Run(g *Globals) error {
	g.applyColor()

	t := newTable("Name", "Description")
	for _, info := range bot.List() {
		t.Row(info.Name, info.Description)
	}
	_, err := fmt.Fprintln(g.output(), t.String())
	return err
}
