package service

import (
	"fmt"
	"html"
)

func goalReminderEmailTemplate(description, completeURL, incompleteURL string) (string, string, string) {
	subject := "Goal Due Today - Action Required"

	text := fmt.Sprintf(`Your goal "%s" is due today.

Mark it completed: %s
Still working on it: %s

You can also update your goals on the dashboard.`, description, completeURL, incompleteURL)

	htmlBody := fmt.Sprintf(`<html>
  <body>
    <h1>Goal Reminder</h1>
    <p>Your goal is due today:</p>
    <p><strong>%s</strong></p>

    <p>Have you completed this goal?</p>

    <table cellspacing="0" cellpadding="0">
      <tr>
        <td style="padding: 12px;">
          <a href="%s"
             style="padding: 12px 24px; background-color: #4CAF50; color: white; text-decoration: none; border-radius: 4px; display: inline-block;">
            Yes, I completed it
          </a>
        </td>
        <td style="padding: 12px;">
          <a href="%s"
             style="padding: 12px 24px; background-color: #f44336; color: white; text-decoration: none; border-radius: 4px; display: inline-block;">
            No, still working on it
          </a>
        </td>
      </tr>
    </table>

    <p>You can also update your goals on the dashboard.</p>
  </body>
</html>`, html.EscapeString(description), completeURL, incompleteURL)

	return subject, text, htmlBody
}

func goalConfirmationEmailTemplate(description, targetDate, dashboardURL, appName string) (string, string) {
	subject := fmt.Sprintf("Goal added to %s", appName)
	body := fmt.Sprintf(`Your goal has been saved:

%s (due %s)

We'll remind you by email on the day it's due. Track your progress here: %s

Best,
The %s Team`, description, targetDate, dashboardURL, appName)

	return subject, body
}
