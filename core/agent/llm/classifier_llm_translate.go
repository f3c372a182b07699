package llm

import (
	"context"
	"fmt"
)

// Translate translates text to the target language. Used to feed the
// sentiment backend English input; the caller substitutes the original text
// on failure.
func (c *Client) Translate(ctx context.Context, text, targetLang string) (string, error) {
	prompt := fmt.Sprintf(`Translate the following text to %s.
Keep the formatting and tone consistent with the original.
Only output the translated text, nothing else.

Text to translate:
%s`, targetLang, text)

	return c.Complete(ctx, prompt)
}
