package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styling
var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	botStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#30d158"))

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0a84ff")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#ff453a")).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Model defines the application state
type Model struct {
	roleMenu    list.Model
	inputField  textinput.Model
	spinner     spinner.Model
	client      *ApiClient
	role        string
	userName    string
	transcript  []string
	suggestions []string
	loading     bool
	currentView string
	error       string
}

// item represents a list item
type item struct {
	title, desc string
}

// FilterValue implements list.Item interface
func (i item) FilterValue() string { return i.title }

// Title implements list.Item interface
func (i item) Title() string { return i.title }

// Description implements list.Item interface
func (i item) Description() string { return i.desc }

// Initialize the model
func initialModel() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	items := []list.Item{
		item{title: "chef", desc: "Recipes, kitchen hygiene, cooking training"},
		item{title: "waiter", desc: "Menu knowledge, service standards, upselling"},
		item{title: "delivery-boy", desc: "Delivery protocols and safety"},
		item{title: "supervisor", desc: "Team monitoring and leadership"},
		item{title: "trainee", desc: "Basics and learning path"},
		item{title: "exit", desc: "Exit the application"},
	}

	roleMenu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	roleMenu.Title = "Staff Training Bot - Choose Your Role"

	ti := textinput.New()
	ti.Placeholder = "Apna sawaal likhiye..."
	ti.CharLimit = 300
	ti.Width = 60

	userName := os.Getenv("STAFFBOT_USER")
	if userName == "" {
		userName = "Ji"
	}

	return Model{
		roleMenu:    roleMenu,
		inputField:  ti,
		spinner:     s,
		client:      NewApiClient(),
		userName:    userName,
		currentView: "roles",
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tea.EnterAltScreen)
}

// Update handles UI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.roleMenu.SetSize(msg.Width-h, msg.Height-v)
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter":
			if m.currentView == "roles" {
				selected, ok := m.roleMenu.SelectedItem().(item)
				if !ok {
					return m, nil
				}
				if selected.title == "exit" {
					return m, tea.Quit
				}
				m.role = selected.title
				m.currentView = "chat"
				m.transcript = nil
				m.error = ""
				m.inputField.Focus()
				return m, fetchSuggestions(m.client, m.role)
			}
			if m.currentView == "chat" && !m.loading {
				message := strings.TrimSpace(m.inputField.Value())
				if message == "" {
					return m, nil
				}
				m.transcript = append(m.transcript, userStyle.Render(m.userName+": ")+message)
				m.inputField.SetValue("")
				m.loading = true
				m.error = ""
				return m, sendMessage(m.client, message, m.role, m.userName)
			}
		case "esc":
			if m.currentView == "chat" {
				m.currentView = "roles"
				m.inputField.Blur()
				return m, nil
			}
			return m, tea.Quit
		}
	case replyMsg:
		m.loading = false
		m.transcript = append(m.transcript, botStyle.Render("Bot: ")+msg.response)
		return m, nil
	case suggestionsMsg:
		m.suggestions = msg.suggestions
		return m, nil
	case errorMsg:
		m.loading = false
		m.error = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentView {
	case "roles":
		m.roleMenu, cmd = m.roleMenu.Update(msg)
	case "chat":
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
		} else {
			m.inputField, cmd = m.inputField.Update(msg)
		}
	}
	return m, cmd
}

// View renders the UI
func (m Model) View() string {
	switch m.currentView {
	case "roles":
		return docStyle.Render(m.roleMenu.View())
	case "chat":
		var b strings.Builder
		b.WriteString(titleStyle.Render("Staff Training Bot - "+m.role) + "\n\n")

		if len(m.transcript) == 0 && len(m.suggestions) > 0 {
			b.WriteString(hintStyle.Render("Try asking:") + "\n")
			for _, s := range m.suggestions {
				b.WriteString(hintStyle.Render("  • "+s) + "\n")
			}
			b.WriteString("\n")
		}
		for _, line := range m.transcript {
			b.WriteString(line + "\n\n")
		}

		if m.loading {
			b.WriteString(m.spinner.View() + " Soch raha hun...\n")
		} else {
			b.WriteString(m.inputField.View() + "\n")
		}
		if m.error != "" {
			b.WriteString(errorStyle.Render(m.error) + "\n")
		}
		b.WriteString(hintStyle.Render("enter: send · esc: change role · ctrl+c: quit"))
		return docStyle.Render(b.String())
	default:
		return "Loading..."
	}
}

// Custom message types for the tea.Model
type replyMsg struct {
	response string
}

type suggestionsMsg struct {
	suggestions []string
}

type errorMsg struct {
	err string
}

// sendMessage posts one chat turn to the API
func sendMessage(client *ApiClient, message, role, name string) tea.Cmd {
	return func() tea.Msg {
		reply, err := client.Chat(message, role, name)
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error sending message: %v", err)}
		}
		return replyMsg{response: reply.Response}
	}
}

// fetchSuggestions retrieves starter questions for the chosen role
func fetchSuggestions(client *ApiClient, role string) tea.Cmd {
	return func() tea.Msg {
		suggestions, err := client.Suggestions(role)
		if err != nil {
			// Suggestions are decoration; failure is not worth surfacing.
			return suggestionsMsg{}
		}
		return suggestionsMsg{suggestions: suggestions}
	}
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v", err)
		os.Exit(1)
	}
}
