// Package render turns a YAML job template and a set of resolved values into
// the final test-job description for the LAVA lab.
package render

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/trustedfirmware/lavagen/util"
)

// Placeholder tokens accepted in job templates. Templates reference them as
// `${TOKEN}`.
const (
	TokenLicenseFile   = "LICENSE_FILE"
	TokenDockerImage   = "DOCKER_IMAGE"
	TokenModelName     = "MODEL_NAME"
	TokenModelDir      = "MODEL_DIR"
	TokenModelBin      = "MODEL_BIN"
	TokenBL1URL        = "BL1_URL"
	TokenFIPURL        = "FIP_URL"
	TokenNSBL1UURL     = "NS_BL1U_URL"
	TokenNSBL2UURL     = "NS_BL2U_URL"
	TokenEL3PayloadURL = "EL3_PAYLOAD_URL"
	TokenKernelURL     = "KERNEL_URL"
	TokenInitrdURL     = "INITRD_URL"
	TokenDTBURL        = "DTB_URL"
	TokenBootImageDir  = "BOOT_IMAGE_DIR"
	TokenBootImageBin  = "BOOT_IMAGE_BIN"
	TokenVersionString = "VERSION_STRING"
)

// Bindings maps placeholder tokens to their resolved values.
type Bindings map[string]string

// requiredTokens must be non-empty before any substitution happens.
var requiredTokens = []string{TokenModelName, TokenModelDir, TokenModelBin}

// optionalDefaults maps tokens of optional firmware images to the symbolic
// filename used when no artifact URL was resolved for them.
var optionalDefaults = map[string]string{
	TokenNSBL1UURL:     "ns_bl1u.bin",
	TokenNSBL2UURL:     "ns_bl2u.bin",
	TokenEL3PayloadURL: "el3_payload.bin",
	TokenInitrdURL:     "initrd.bin",
}

var placeholderRe = regexp.MustCompile(`\$\{[A-Za-z_][A-Za-z0-9_]*\}`)

// RequiredBindingError is reported when a binding the template cannot do
// without is empty.
type RequiredBindingError struct {
	Token string
}

func (e *RequiredBindingError) Error() string {
	return fmt.Sprintf("binding '%s' is empty, not generating a job description", e.Token)
}

// UnresolvedPlaceholderError is reported when placeholder tokens survive
// substitution. A leaked token means the template and the binding set have
// drifted apart.
type UnresolvedPlaceholderError struct {
	Tokens []string
}

func (e *UnresolvedPlaceholderError) Error() string {
	return fmt.Sprintf("unresolved placeholders after substitution: %s", strings.Join(e.Tokens, ", "))
}

// ApplyDefaults fills unset optional image tokens with their symbolic
// filenames.
func (b Bindings) ApplyDefaults() {
	for token, filename := range optionalDefaults {
		if b[token] == "" {
			b[token] = filename
		}
	}
}

// Render loads the template at `templatePath` and substitutes `bindings`
// into it. A missing template is not an error: it means the platform opted
// out of YAML generation, and the second return value is false.
func Render(templatePath string, bindings Bindings) (string, bool, error) {
	if !util.FileExists(templatePath) {
		return "", false, nil
	}

	for _, token := range requiredTokens {
		if bindings[token] == "" {
			return "", false, &RequiredBindingError{Token: token}
		}
	}

	doc := string(util.ReadFile(templatePath))
	for token, value := range bindings {
		doc = strings.ReplaceAll(doc, "${"+token+"}", value)
	}

	if leftover := placeholderRe.FindAllString(doc, -1); len(leftover) > 0 {
		seen := map[string]bool{}
		tokens := []string{}
		for _, token := range leftover {
			if !seen[token] {
				seen[token] = true
				tokens = append(tokens, token)
			}
		}
		sort.Strings(tokens)
		return "", false, &UnresolvedPlaceholderError{Tokens: tokens}
	}

	return doc, true, nil
}
