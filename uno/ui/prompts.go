package ui

import (
	"bufio"
	"io"
	stringx "strings"

	"github.com/ratel-online/duel/uno/msg"
)

// PromptString asks until the player enters a non-blank line.
func PromptString(scanner *bufio.Scanner, display *Display, message string) (string, error) {
	for {
		display.Println(message)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		input := stringx.TrimSpace(scanner.Text())
		if input == "" {
			display.Println("Invalid text input")
			continue
		}
		return input, nil
	}
}

// Play starts the match and feeds it lines from scanner until the player leaves
// or the input runs out.
func (c *Console) Play(scanner *bufio.Scanner, playerName string) error {
	c.display.Print(msg.Message.Welcome(playerName))
	c.match.Start()

	for scanner.Scan() {
		line := scanner.Text()
		if stringx.TrimSpace(line) == "" {
			continue
		}
		reply, exit := Execute(c.match, line)
		c.display.Print(reply)
		if exit {
			return nil
		}
	}
	return scanner.Err()
}
