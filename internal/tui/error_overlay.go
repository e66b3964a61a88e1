package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := "Error\n\n" + m.message + "\n\nr reintentar"
	return overlayBoxStyle.Render(content)
}
