package pep

import "strings"

// Stance tags a debate claim.
type Stance uint8

const (
	// StanceRebuttal marks an untagged nested counter-claim.
	StanceRebuttal Stance = iota
	StancePro
	StanceCon
)

func (s Stance) String() string {
	switch s {
	case StancePro:
		return "PRO"
	case StanceCon:
		return "CON"
	}
	return "REBUTTAL"
}

// DebateEntry is one claim of the dissenting opinion, with any nested
// rebuttals.
type DebateEntry struct {
	Stance    Stance
	Claim     []Note
	Rebuttals []DebateEntry
}

// Alternative groups the debate entries of one alternative-proposal
// subsection.
type Alternative struct {
	Title   string
	Entries []DebateEntry
}

const dissent = "Dissenting Opinion"

// Debate extracts the pro/con tree of the dissenting opinion, one
// Alternative per subsection. Bullet items tagged PRO: or CON: become
// entries; nested bullets become their rebuttals.
func (d *Document) Debate() []Alternative {
	sec := d.Section(dissent)
	if sec == nil {
		return nil
	}

	var alts []Alternative
	for _, sub := range sec.Sections {
		alt := Alternative{Title: sub.Title}
		for _, n := range sub.Content {
			list, ok := n.(List)
			if !ok {
				continue
			}
			for _, item := range list.Items {
				if entry, ok := debateEntry(item); ok {
					alt.Entries = append(alt.Entries, entry)
				}
			}
		}
		alts = append(alts, alt)
	}
	return alts
}

func debateEntry(item ListItem) (DebateEntry, bool) {
	stance, claim, ok := splitStance(item.Parts)
	if !ok {
		return DebateEntry{}, false
	}

	entry := DebateEntry{Stance: stance, Claim: claim}
	for _, child := range item.Items {
		entry.Rebuttals = append(entry.Rebuttals, DebateEntry{
			Stance: StanceRebuttal,
			Claim:  child.Parts,
		})
	}
	return entry, true
}

func splitStance(parts []Note) (Stance, []Note, bool) {
	if len(parts) == 0 {
		return 0, nil, false
	}
	head, ok := parts[0].(Text)
	if !ok {
		return 0, nil, false
	}

	var stance Stance
	text := string(head)
	switch {
	case strings.HasPrefix(text, "PRO: "):
		stance = StancePro
	case strings.HasPrefix(text, "CON: "):
		stance = StanceCon
	default:
		return 0, nil, false
	}

	claim := append([]Note{Text(text[len("PRO: "):])}, parts[1:]...)
	return stance, claim, true
}

// Markdown renders the alternative for a Discord embed.
func (a Alternative) Markdown() string {
	var b strings.Builder
	for i, e := range a.Entries {
		if i > 0 {
			b.WriteRune('\n')
		}
		b.WriteString(e.markdown(""))
	}
	return b.String()
}

func (e DebateEntry) markdown(indent string) string {
	var b strings.Builder
	b.WriteString(indent)
	if e.Stance != StanceRebuttal {
		b.WriteString("**")
		b.WriteString(e.Stance.String())
		b.WriteString(":** ")
	}
	for _, part := range e.Claim {
		b.WriteString(part.Markdown())
	}
	for _, r := range e.Rebuttals {
		b.WriteRune('\n')
		b.WriteString(r.markdown(indent + "> "))
	}
	return b.String()
}
