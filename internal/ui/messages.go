package ui

import "github.com/justinpbarnett/medintel/internal/ui/panels"

// Type aliases to panels message types so there is one definition.

// AlertMsg asks the shell to show a blocking notice.
type AlertMsg = panels.AlertMsg

// CloseModalMsg signals that the open modal should be closed.
type CloseModalMsg = panels.CloseModalMsg

// FlashMsg asks the status bar to show a transient message.
type FlashMsg = panels.FlashMsg

// ClearFlashMsg clears a status bar flash.
type ClearFlashMsg = panels.ClearFlashMsg

// HealthMsg reports the startup backend probe.
type HealthMsg = panels.HealthMsg
