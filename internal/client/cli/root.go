package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

func (a *App) getStatus(ctx context.Context) string {
	s := a.gate.Current(ctx)
	if s.Anonymous() || s.User == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", s.User.Username)
}

// Root runs the read–eval–print loop. It reads a line, parses the first
// token as the command, and dispatches to handlers on a. Unknown commands
// are reported back. The loop exits on EOF or "exit"/"quit".
//
// Commands and form prompts share a.reader, so piped or scripted input is
// consumed line by line in order instead of being swallowed by a separate
// scanner's readahead.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to BlogIt (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "blogit %s> ", a.getStatus(ctx))
		line, readErr := a.reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if readErr != nil {
				break
			}
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				fmt.Fprintln(a.out, "Available commands: list [category], show <id>, create, edit <id>, delete <id>, like <id>, comment <id>, profile [id], editprofile, whoami, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			a.Whoami(ctx)

		case "l", "list":
			category := ""
			if len(args) > 0 {
				category = strings.Join(args, " ")
			}
			_ = a.ListBlogs(ctx, category)

		case "show":
			if id, ok := a.idArg(args, "show"); ok {
				_ = a.ShowBlog(ctx, id)
			}
		case "create":
			_ = a.CreateBlog(ctx)
		case "edit":
			if id, ok := a.idArg(args, "edit"); ok {
				_ = a.EditBlog(ctx, id)
			}
		case "delete":
			if id, ok := a.idArg(args, "delete"); ok {
				_ = a.DeleteBlog(ctx, id)
			}
		case "like":
			if id, ok := a.idArg(args, "like"); ok {
				_ = a.LikeBlog(ctx, id)
			}
		case "comment":
			if id, ok := a.idArg(args, "comment"); ok {
				_ = a.CommentBlog(ctx, id)
			}

		case "profile":
			if len(args) == 0 {
				_ = a.MyProfile(ctx)
			} else if id, ok := a.idArg(args, "profile"); ok {
				_ = a.ShowProfile(ctx, id)
			}
		case "editprofile":
			_ = a.EditProfile(ctx)

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}

		if readErr != nil {
			break
		}
	}
}

func (a *App) idArg(args []string, cmd string) (int64, bool) {
	if len(args) == 0 {
		fmt.Fprintf(a.out, "Usage: %s <id>\n", cmd)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "Invalid id: %s\n", args[0])
		return 0, false
	}
	return id, true
}
