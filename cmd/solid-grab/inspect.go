package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/net/html"

	"github.com/omniaura/solid-grab/resolver"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] page.html",
	Short: "Resolve the source and component ancestry of an element",
	Long: `Inspect parses a rendered HTML document, locates an element by id or tag
name, and prints the solid-grab context report recovered from the injected
metadata attributes.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().String("id", "", "select the element with this id")
	inspectCmd.Flags().String("tag", "", "select the first element with this tag name")
}

func runInspect(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("id")
	tag, _ := cmd.Flags().GetString("tag")
	if id == "" && tag == "" {
		return fmt.Errorf("one of --id or --tag is required")
	}

	file, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	doc, err := html.Parse(file)
	if err != nil {
		return fmt.Errorf("parse %s: %w", args[0], err)
	}

	target := findElement(doc, id, strings.ToLower(tag))
	if target == nil {
		return fmt.Errorf("no matching element in %s", args[0])
	}

	ctx, err := resolver.Inspect(target)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), ctx.Formatted)
	return nil
}

// findElement returns the first element matching id (when set) or tag.
func findElement(n *html.Node, id, tag string) *html.Node {
	if n.Type == html.ElementNode {
		if id != "" {
			for _, a := range n.Attr {
				if a.Key == "id" && a.Val == id {
					return n
				}
			}
		} else if n.Data == tag {
			return n
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, id, tag); found != nil {
			return found
		}
	}
	return nil
}
