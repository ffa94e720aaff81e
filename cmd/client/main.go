package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/adrianliechti/suggest/pkg/client"
)

func main() {
	urlFlag := flag.String("url", "http://localhost:8000", "server url")
	sourceFlag := flag.String("source", "all", "suggestion source (google, amazon, youtube, all)")
	limitFlag := flag.Int("limit", 0, "max suggestions per source")

	flag.Parse()

	ctx := context.Background()

	c := client.New(*urlFlag)

	req := client.SuggestionRequest{}

	if *limitFlag > 0 {
		req.Limit = limitFlag
	}

	source := strings.ToLower(*sourceFlag)

	if args := flag.Args(); len(args) > 0 {
		req.Query = strings.Join(args, " ")
		suggest(ctx, c, source, req)
		return
	}

	reader := bufio.NewReader(os.Stdin)
	output := os.Stdout

LOOP:
	for {
		output.WriteString(">>> ")
		input, err := reader.ReadString('\n')

		if err != nil {
			return
		}

		input = strings.TrimSpace(input)

		if input == "" {
			continue LOOP
		}

		if strings.HasPrefix(input, "/") {
			cmd, arg, _ := strings.Cut(input, " ")

			switch strings.ToLower(cmd) {
			case "/source":
				source = strings.ToLower(strings.TrimSpace(arg))
				continue LOOP

			case "/status":
				status(ctx, c)
				continue LOOP

			default:
				output.WriteString("Unknown command\n")
				continue LOOP
			}
		}

		req.Query = input
		suggest(ctx, c, source, req)

		output.WriteString("\n")
	}
}

func suggest(ctx context.Context, c *client.Client, source string, req client.SuggestionRequest) {
	output := os.Stdout

	if source == "" || source == "all" {
		results, err := c.Suggestions.All(ctx, req)

		if err != nil {
			output.WriteString(err.Error() + "\n")
			return
		}

		for _, r := range results {
			printResult(r)
		}

		return
	}

	result, err := c.Suggestions.Get(ctx, source, req)

	if err != nil {
		output.WriteString(err.Error() + "\n")
		return
	}

	printResult(*result)
}

func status(ctx context.Context, c *client.Client) {
	host, _ := os.Hostname()

	if _, err := c.Status.New(ctx, client.StatusRequest{ClientName: host}); err != nil {
		fmt.Println(err.Error())
		return
	}

	checks, err := c.Status.List(ctx)

	if err != nil {
		fmt.Println(err.Error())
		return
	}

	for _, check := range checks {
		fmt.Printf("%s  %s  %s\n", check.Timestamp.Format("2006-01-02 15:04:05"), check.ID, check.ClientName)
	}
}

func printResult(r client.SuggestionResult) {
	fmt.Printf("[%s]\n", r.Source)

	for i, s := range r.Suggestions {
		fmt.Printf("%2d) %s\n", i+1, s)
	}
}
