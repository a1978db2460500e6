package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/anatolykoptev/go-kit/strutil"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/anatolykoptev/go_tiktok/internal/tiktok"
)

const descWidth = 48

// printEnvelope writes env as indented JSON, or as a status line followed by
// an item table for feeds and the info block for lookups.
func printEnvelope(w io.Writer, env *tiktok.Envelope, raw bool) error {
	if raw {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(env)
	}

	m := env.Meta
	fmt.Fprintf(w, "success=%t http=%d code=%v %s\n", m.Success, m.HTTPCode, m.AppCode, str(m.Message))
	if !m.Success {
		return nil
	}

	if env.Paged() {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.AppendHeader(table.Row{"ID", "Author", "Description", "Plays", "Likes", "Comments", "Shares"})
		for _, it := range env.Items {
			t.AppendRow(table.Row{
				str(it.ID),
				str(it.Author.UniqueID),
				strutil.TruncateWith(str(it.Description), descWidth, "…"),
				num(it.Stats.PlayCount),
				num(it.Stats.DiggCount),
				num(it.Stats.CommentCount),
				num(it.Stats.ShareCount),
			})
		}
		t.AppendFooter(table.Row{"", "", "hasMore=" + strconv.FormatBool(env.HasMore), "max", env.MaxCursor, "min", env.MinCursor})
		t.SetStyle(table.StyleRounded)
		t.Render()
		return nil
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if env.Info != nil {
		return enc.Encode(env.Info)
	}
	if env.UserInfo != nil {
		return enc.Encode(env.UserInfo)
	}
	return nil
}

func str(p *string) string {
	if p == nil {
		return "-"
	}
	return *p
}

func num(p *int64) string {
	if p == nil {
		return "-"
	}
	return strconv.FormatInt(*p, 10)
}
