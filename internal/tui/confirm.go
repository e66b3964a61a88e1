package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := "¿Restablecer \"" + m.message + "\" a los valores por defecto?\n\n"
	content += "y sí    cualquier otra tecla: no"
	return overlayBoxStyle.Render(content)
}
