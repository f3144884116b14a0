package client

import (
	"context"
	"fmt"
	"permissioned-registry/auth"
	"permissioned-registry/codec"
	"permissioned-registry/domain"
	"permissioned-registry/services"
	"permissioned-registry/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

func runInstantiate(ctx context.Context, c *CLI, args []string) error {
	fs := c.flagSet("instantiate")
	token := fs.String("token", "", "caller token")
	owner := fs.String("owner", "", "owner identity (defaults to the caller)")
	if err := parse(fs, args); err != nil {
		return err
	}
	caller, err := c.caller(*token)
	if err != nil {
		return err
	}

	cmd := domain.InstantiateCommand{}
	if fs.Changed("owner") {
		cmd.Owner = owner
	}
	return c.withService(func(svc services.IRegistryService) error {
		resp, err := svc.Instantiate(ctx, caller, cmd)
		if err != nil {
			return err
		}
		c.printResponse(resp)
		return nil
	})
}

func runAddWriter(ctx context.Context, c *CLI, args []string) error {
	return c.runWriterCommand(ctx, "add-writer", args, func(writer string) domain.ExecuteCommand {
		return domain.AddWriterCommand{Writer: writer}
	})
}

func runRemoveWriter(ctx context.Context, c *CLI, args []string) error {
	return c.runWriterCommand(ctx, "remove-writer", args, func(writer string) domain.ExecuteCommand {
		return domain.RemoveWriterCommand{Writer: writer}
	})
}

func (c *CLI) runWriterCommand(ctx context.Context, name string, args []string, build func(string) domain.ExecuteCommand) error {
	fs := c.flagSet(name)
	token := fs.String("token", "", "caller token")
	writer := fs.String("writer", "", "writer identity")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required("writer", *writer); err != nil {
		return err
	}
	return c.execute(ctx, *token, build(*writer))
}

func runRegisterMessage(ctx context.Context, c *CLI, args []string) error {
	fs := c.flagSet("register-message")
	token := fs.String("token", "", "caller token")
	content := fs.String("content", "", "message content")
	if err := parse(fs, args); err != nil {
		return err
	}
	if !fs.Changed("content") {
		return usageError{msg: "--content is required"}
	}
	return c.execute(ctx, *token, domain.RegisterMessageCommand{Content: *content})
}

func (c *CLI) execute(ctx context.Context, token string, cmd domain.ExecuteCommand) error {
	caller, err := c.caller(token)
	if err != nil {
		return err
	}
	return c.withService(func(svc services.IRegistryService) error {
		resp, err := svc.Execute(ctx, caller, cmd)
		if err != nil {
			return err
		}
		c.printResponse(resp)
		return nil
	})
}

func runGetMessage(ctx context.Context, c *CLI, args []string) error {
	fs := c.flagSet("get-message")
	writer := fs.String("writer", "", "writer identity")
	asJSON := fs.Bool("json", false, "print JSON")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required("writer", *writer); err != nil {
		return err
	}
	return c.withService(func(svc services.IRegistryService) error {
		resp, err := svc.Query(ctx, domain.GetMessageQuery{Writer: *writer})
		if err != nil {
			return err
		}
		if *asJSON {
			return c.printJSON(resp.Message)
		}
		if resp.Message == nil {
			c.printf(c.stdout, color.FgYellow, "no message")
			return nil
		}
		table := c.table("Author", "Content")
		table.Append([]string{resp.Message.Author.String(), resp.Message.Content})
		table.Render()
		return nil
	})
}

func runGetWriters(ctx context.Context, c *CLI, args []string) error {
	fs := c.flagSet("get-writers")
	asJSON := fs.Bool("json", false, "print JSON")
	if err := parse(fs, args); err != nil {
		return err
	}
	return c.withService(func(svc services.IRegistryService) error {
		resp, err := svc.Query(ctx, domain.GetWritersQuery{})
		if err != nil {
			return err
		}
		writers := lo.Map(resp.Writers, func(id domain.Identity, _ int) string { return id.String() })
		if *asJSON {
			return c.printJSON(writers)
		}
		table := c.table("Writer")
		for _, writer := range writers {
			table.Append([]string{writer})
		}
		table.Render()
		return nil
	})
}

// runIssueToken signs a token for any identity. Whoever holds SIGNING_KEY
// acts as the host that authenticates callers.
func runIssueToken(_ context.Context, c *CLI, args []string) error {
	fs := c.flagSet("issue-token")
	identity := fs.String("identity", "", "identity the token asserts")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required("identity", *identity); err != nil {
		return err
	}
	id, err := auth.ValidateIdentity(*identity)
	if err != nil {
		return err
	}
	token, err := c.authenticator.GenerateToken(id)
	if err != nil {
		return fmt.Errorf("token generation failed: %w", err)
	}
	fmt.Fprintln(c.stdout, token)
	return nil
}

func runDump(_ context.Context, c *CLI, args []string) error {
	fs := c.flagSet("dump")
	name := fs.String("namespace", "", "config, writers or messages")
	if err := parse(fs, args); err != nil {
		return err
	}
	ns, ok := storage.ParseNamespace(*name)
	if !ok {
		return usageError{msg: fmt.Sprintf("--namespace must be one of %v", storage.Namespaces)}
	}
	return c.withDB(func(db *badger.DB) error {
		rows, err := storage.Dump(db, ns)
		if err != nil {
			return err
		}
		table := c.table("Key", "Value")
		for _, row := range rows {
			value, err := codec.Diagnose(row.Value)
			if err != nil {
				value = fmt.Sprintf("<%d undecodable bytes>", len(row.Value))
			}
			table.Append([]string{row.Key, value})
		}
		table.Render()
		return nil
	})
}

func (c *CLI) printResponse(resp domain.Response) {
	c.printf(c.stdout, color.FgGreen, "ok")
	table := c.table("Attribute", "Value")
	for _, attribute := range resp.Attributes {
		table.Append([]string{attribute.Key, attribute.Value})
	}
	if resp.Message != nil {
		table.Append([]string{"author", resp.Message.Author.String()})
		table.Append([]string{"content", resp.Message.Content})
	}
	table.Render()
}

func (c *CLI) table(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(c.stdout)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	return table
}
