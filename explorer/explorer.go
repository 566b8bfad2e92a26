// Package explorer is the interactive terminal browser for a decoded
// .abc file: a class/method tree alongside a disassembly pane, built
// on tcell/tview the way the teacher's debugger package builds its
// TUI over a running VM.
package explorer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/arkbc/abcdis/abcfile"
	"github.com/arkbc/abcdis/tools"
)

// Explorer is the text user interface over one decoded file.
type Explorer struct {
	File *abcfile.File
	App  *tview.Application
	Root *tview.Flex

	Tree            *tview.TreeView
	DisassemblyView *tview.TextView
	StatusView      *tview.TextView
	CommandInput    *tview.InputField

	currentMethod string
}

// New builds an Explorer over an already-decoded file. Call Run to
// start the event loop.
func New(f *abcfile.File) *Explorer {
	return newExplorer(f, tview.NewApplication())
}

// NewWithScreen builds an Explorer bound to a pre-created tcell
// screen, letting tests drive it against a simulation screen instead
// of a real terminal.
func NewWithScreen(f *abcfile.File, screen tcell.Screen) *Explorer {
	return newExplorer(f, tview.NewApplication().SetScreen(screen))
}

func newExplorer(f *abcfile.File, app *tview.Application) *Explorer {
	e := &Explorer{
		File: f,
		App:  app,
	}

	e.initializeViews()
	e.populateTree()
	e.buildLayout()
	e.setupKeyBindings()

	return e
}

func (e *Explorer) initializeViews() {
	e.Tree = tview.NewTreeView()
	e.Tree.SetBorder(true).SetTitle(" Classes / Methods ")

	e.DisassemblyView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	e.DisassemblyView.SetBorder(true).SetTitle(" Disassembly ")

	e.StatusView = tview.NewTextView().
		SetDynamicColors(true)
	e.StatusView.SetBorder(true).SetTitle(" Status ")

	e.CommandInput = tview.NewInputField().
		SetLabel("/ ").
		SetFieldWidth(0)
	e.CommandInput.SetBorder(true).SetTitle(" Search method ")
	e.CommandInput.SetDoneFunc(e.handleSearch)
}

// populateTree groups qualified method names ("Lfoo/Bar;->baz") under
// their owning class so the root shows classes, and expanding a class
// shows its methods.
func (e *Explorer) populateTree() {
	root := tview.NewTreeNode(fmt.Sprintf("%s (%d classes)", "abc", len(e.File.ClassNames()))).
		SetColor(tcell.ColorYellow)
	e.Tree.SetRoot(root).SetCurrentNode(root)

	byClass := make(map[string][]string)
	for _, m := range e.File.MethodNames() {
		class, method, ok := strings.Cut(m, "->")
		if !ok {
			class, method = "(unknown)", m
		}
		byClass[class] = append(byClass[class], method)
	}

	classNames := make([]string, 0, len(byClass))
	for c := range byClass {
		classNames = append(classNames, c)
	}
	sort.Strings(classNames)

	for _, class := range classNames {
		methods := byClass[class]
		sort.Strings(methods)

		classNode := tview.NewTreeNode(class).SetSelectable(true).SetColor(tcell.ColorGreen)
		for _, method := range methods {
			qualified := class + "->" + method
			methodNode := tview.NewTreeNode("  " + method).
				SetReference(qualified).
				SetSelectable(true)
			classNode.AddChild(methodNode)
		}
		root.AddChild(classNode)
	}

	e.Tree.SetSelectedFunc(func(node *tview.TreeNode) {
		ref := node.GetReference()
		qualified, ok := ref.(string)
		if !ok {
			node.SetExpanded(!node.IsExpanded())
			return
		}
		e.showDisassembly(qualified)
	})
}

func (e *Explorer) buildLayout() {
	left := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(e.Tree, 0, 1, true)

	right := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(e.DisassemblyView, 0, 1, false).
		AddItem(e.StatusView, 3, 0, false)

	content := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(left, 0, 1, true).
		AddItem(right, 0, 2, false)

	e.Root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(content, 0, 1, true).
		AddItem(e.CommandInput, 3, 0, false)
}

func (e *Explorer) setupKeyBindings() {
	e.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyCtrlC:
			e.App.Stop()
			return nil
		case event.Key() == tcell.KeyCtrlF:
			e.App.SetFocus(e.CommandInput)
			return nil
		case event.Rune() == 'q' && e.App.GetFocus() == e.Tree:
			e.App.Stop()
			return nil
		}
		return event
	})
}

// TriggerSearch runs the same lookup handleSearch performs on Enter,
// for tests that drive the command input programmatically.
func (e *Explorer) TriggerSearch() {
	e.handleSearch(tcell.KeyEnter)
}

func (e *Explorer) handleSearch(key tcell.Key) {
	if key != tcell.KeyEnter {
		return
	}
	query := strings.TrimSpace(e.CommandInput.GetText())
	if query == "" {
		return
	}
	for _, m := range e.File.MethodNames() {
		if strings.Contains(m, query) {
			e.showDisassembly(m)
			e.App.SetFocus(e.Tree)
			return
		}
	}
	e.setStatus(fmt.Sprintf("[red]no method matching %q[white]", query))
}

func (e *Explorer) showDisassembly(qualifiedMethod string) {
	insns, err := e.File.DisassembleMethod(qualifiedMethod)
	if err != nil {
		e.DisassemblyView.SetText(fmt.Sprintf("[red]error disassembling %s: %v[white]", qualifiedMethod, err))
		return
	}

	e.currentMethod = qualifiedMethod
	listing := tools.FormatListing(qualifiedMethod, insns, tools.DefaultListingOptions())
	e.DisassemblyView.SetText(tview.Escape(listing))
	e.DisassemblyView.ScrollToBeginning()
	e.setStatus(fmt.Sprintf("%s — %d instructions", qualifiedMethod, len(insns)))
}

func (e *Explorer) setStatus(text string) {
	e.StatusView.SetText(text)
}

// Run starts the TUI event loop. It blocks until the user quits.
func (e *Explorer) Run() error {
	return e.App.SetRoot(e.Root, true).SetFocus(e.Tree).Run()
}
