package report

import (
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/preston-bernstein/pen-pictures/internal/domain/players"
	"github.com/preston-bernstein/pen-pictures/internal/domain/teams"
	"github.com/preston-bernstein/pen-pictures/internal/squad"
)

const (
	// sheetWidth is the last 0-based column of merged header and name rows (A..J).
	sheetWidth   = 9
	firstRow     = 6
	maxSheetName = 31

	colLabel      = 0
	colValue      = 2
	colFoot       = 4
	colRoleLabel  = 4
	colRoleValue  = 6
	colHeight     = 7
	headerFontSz  = 22
	nameFontSz    = 14
	statFontSz    = 12
	headerFill    = "0000FF"
	nameFill      = "FFFF00"
	headerFontClr = "FFFFFF"
)

// XLSXOptions control spreadsheet rendering.
type XLSXOptions struct {
	// BadgePath is an optional image placed at A2 and J2.
	BadgePath string
}

// WriteXLSX renders the squad as a pen-picture workbook at path.
func WriteXLSX(path string, team teams.Team, sq squad.Squad, opts XLSXOptions) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := SheetName(team.Name)
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	fitToPage := true
	if err := f.SetSheetProps(sheet, &excelize.SheetPropsOptions{FitToPage: &fitToPage}); err != nil {
		return fmt.Errorf("sheet props: %w", err)
	}
	wide, tall := 1, 99
	if err := f.SetPageLayout(sheet, &excelize.PageLayoutOptions{FitToWidth: &wide, FitToHeight: &tall}); err != nil {
		return fmt.Errorf("page layout: %w", err)
	}

	st, err := newStyles(f)
	if err != nil {
		return err
	}
	w := &sheetWriter{f: f, sheet: sheet}

	w.merge(0, 4, fmt.Sprintf("%s squad", team.Name), st.header)
	if opts.BadgePath != "" {
		for _, cell := range []string{"A2", "J2"} {
			if err := f.AddPicture(sheet, cell, opts.BadgePath, nil); err != nil {
				return fmt.Errorf("add badge %s: %w", opts.BadgePath, err)
			}
		}
	}

	row := firstRow
	for _, p := range sq.Players {
		row = w.player(row, p, team, st)
	}
	if w.err != nil {
		return w.err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// SheetName returns a valid worksheet name for the team.
func SheetName(team string) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return ' '
		}
		return r
	}, team+" pen pics")
	if runes := []rune(name); len(runes) > maxSheetName {
		name = string(runes[:maxSheetName])
	}
	return name
}

type styles struct {
	header int
	name   int
	stat   int
}

func newStyles(f *excelize.File) (styles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	header, err := f.NewStyle(&excelize.Style{
		Border:    border,
		Font:      &excelize.Font{Bold: true, Family: "Calibri", Size: headerFontSz, Color: headerFontClr},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFill}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return styles{}, fmt.Errorf("header style: %w", err)
	}
	name, err := f.NewStyle(&excelize.Style{
		Border:    border,
		Font:      &excelize.Font{Bold: true, Family: "Calibri", Size: nameFontSz},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{nameFill}},
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
	})
	if err != nil {
		return styles{}, fmt.Errorf("name style: %w", err)
	}
	stat, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: statFontSz},
	})
	if err != nil {
		return styles{}, fmt.Errorf("stat style: %w", err)
	}
	return styles{header: header, name: name, stat: stat}, nil
}

// sheetWriter keeps the first error so the layout code reads top to bottom.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func cellName(row, col int) (string, error) {
	return excelize.CoordinatesToCellName(col+1, row+1)
}

func (w *sheetWriter) set(row, col int, value any, style int) {
	if w.err != nil {
		return
	}
	cell, err := cellName(row, col)
	if err != nil {
		w.err = err
		return
	}
	if err := w.f.SetCellValue(w.sheet, cell, value); err != nil {
		w.err = err
		return
	}
	if style != 0 {
		w.err = w.f.SetCellStyle(w.sheet, cell, cell, style)
	}
}

// merge writes value across columns A..J for rows first..last.
func (w *sheetWriter) merge(first, last int, value string, style int) {
	if w.err != nil {
		return
	}
	top, err := cellName(first, 0)
	if err != nil {
		w.err = err
		return
	}
	bottom, err := cellName(last, sheetWidth)
	if err != nil {
		w.err = err
		return
	}
	if w.err = w.f.MergeCell(w.sheet, top, bottom); w.err != nil {
		return
	}
	if w.err = w.f.SetCellValue(w.sheet, top, value); w.err != nil {
		return
	}
	w.err = w.f.SetCellStyle(w.sheet, top, bottom, style)
}

// player lays out one pen picture starting at row and returns the next free row.
func (w *sheetWriter) player(row int, p players.Player, team teams.Team, st styles) int {
	pic := NewPenPicture(p)

	w.merge(row, row, pic.Header, st.name)
	row++

	w.set(row, colLabel, p.PositionLabel(), st.stat)
	if p.PreferredFoot != "" {
		w.set(row, colFoot, "Foot: "+p.PreferredFoot, st.stat)
	}
	if p.Height.Known {
		w.set(row, colHeight, "Height: "+p.Height.Display(), st.stat)
	}
	row += 2

	w.set(row, colLabel, fmt.Sprintf("%s %s:", team.Season, team.Competition), st.stat)
	row += 2

	s := p.Stats
	w.set(row, colLabel, "Appearances:", st.stat)
	w.set(row, colValue, s.Appearances, 0)
	if s.Appearances > 0 {
		for i, line := range []struct {
			label string
			value int
		}{
			{"Starts:", s.Starts},
			{"Subbed on:", s.SubOn},
			{"Subbed off:", s.SubOff},
			{"Minutes played:", s.Minutes},
		} {
			w.set(row+1+i, colLabel, line.label, st.stat)
			w.set(row+1+i, colValue, line.value, 0)
		}

		if gk, ok := p.Keeper(); ok {
			w.set(row, colRoleLabel, "Clean sheets:", st.stat)
			w.set(row+2, colRoleLabel, "Penalties faced:", st.stat)
			w.set(row+3, colRoleLabel, "Penalties saved:", st.stat)
			w.set(row, colRoleValue, gk.CleanSheets, 0)
			if gk.PenaltiesFaced > 0 {
				w.set(row+2, colRoleValue, gk.PenaltiesFaced, 0)
				w.set(row+3, colRoleValue, gk.PenaltiesSaved, 0)
			}
		} else {
			w.set(row, colRoleLabel, "Goals:", st.stat)
			w.set(row+1, colRoleLabel, "Assists:", st.stat)
			w.set(row+3, colRoleLabel, "Involvements:", st.stat)
			w.set(row, colRoleValue, s.Goals, 0)
			w.set(row+1, colRoleValue, s.Assists, 0)
			w.set(row+3, colRoleValue, s.Involvements(), 0)
		}
		row += 6
	} else {
		row += 2
	}

	if len(pic.Sentences) > 0 {
		w.set(row, colLabel, "Season stats:", st.stat)
		row++
		for _, line := range pic.Sentences {
			w.set(row, colLabel, line, 0)
			row++
		}
		row++
	}
	return row
}
