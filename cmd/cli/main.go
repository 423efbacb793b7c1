package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Kravtmk/whoami-app/cmd/pkg/cli"
	"github.com/charmbracelet/lipgloss"
)

var replyStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#874BFD")).
	Padding(0, 1)

func main() {
	method := flag.String("method", "GET", "HTTP method")
	endpoint := flag.String("endpoint", "/", "API endpoint")
	data := flag.String("data", "", "JSON payload")
	host := flag.String("host", "http://localhost:8000", "API host")
	command := flag.String("cmd", "", `chat command, e.g. "/today u1"`)
	chat := flag.Bool("chat", false, "read chat commands from stdin")
	flag.Parse()
	client := cli.NewClient(*host)
	ctx := context.Background()

	switch {
	case *command != "":
		fmt.Println(replyStyle.Render(cli.NewBot(client).Handle(ctx, *command)))
	case *chat:
		bot := cli.NewBot(client)
		fmt.Println(replyStyle.Render(cli.StartText()))
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			fmt.Println(replyStyle.Render(bot.Handle(ctx, line)))
		}
		if err := scanner.Err(); err != nil {
			log.Fatal("Failed to read stdin: ", err)
		}
	default:
		if err := client.Request(os.Stdout, *method, *endpoint, *data); err != nil {
			log.Fatal(err)
		}
	}
}
