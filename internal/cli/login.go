package cli

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/voltlabhq/voltlab/internal/auth"
	"github.com/voltlabhq/voltlab/internal/browser"
	"github.com/voltlabhq/voltlab/pkg/client"
)

// loginTimeout bounds the whole browser round-trip.
const loginTimeout = 2 * time.Minute

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate in your browser",
	Long: `Opens the Voltlab site to sign in. The site hands a one-time code back
to the CLI, which exchanges it for an API token and stores the session
under ~/.voltlab.`,
	RunE: runLogin,
}

// callbackResult is what the ephemeral server hands back: a one-time code,
// or the reason it could not get one.
type callbackResult struct {
	code string
	err  error
}

func runLogin(cmd *cobra.Command, args []string) error {
	// Ephemeral callback server on a random localhost port. The site
	// redirects the browser back here with the one-time code.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return fmt.Errorf("start callback listener: %w", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port

	// CSRF state token: the callback must echo it back.
	stateBytes := make([]byte, 16)
	if _, err := rand.Read(stateBytes); err != nil {
		return fmt.Errorf("generate state token: %w", err)
	}
	expectedState := hex.EncodeToString(stateBytes)

	resultCh := make(chan callbackResult, 1)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Listener = listener
	e.GET("/callback", newCallbackHandler(expectedState, resultCh))

	go func() {
		if srvErr := e.Start(""); srvErr != nil && srvErr != http.ErrServerClosed {
			resultCh <- callbackResult{err: srvErr}
		}
	}()
	defer func() {
		shutCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		e.Shutdown(shutCtx) //nolint:errcheck // best-effort shutdown
	}()

	params := url.Values{}
	params.Set("port", strconv.Itoa(port))
	params.Set("state", expectedState)
	loginURL := cfg.SiteURL + "/cli-login?" + params.Encode()

	log.Info().Int("port", port).Msg("login flow started")
	fmt.Println("Opening browser to authenticate...")
	if err := browser.Open(loginURL); err != nil {
		fmt.Printf("Could not open browser. Visit this URL manually:\n  %s\n", loginURL)
	}

	select {
	case res := <-resultCh:
		if res.err != nil {
			log.Error().Err(res.err).Msg("login callback failed")
			return fmt.Errorf("login callback: %w", res.err)
		}
		return finishLogin(res.code)
	case <-time.After(loginTimeout):
		return fmt.Errorf("login timed out, no callback received within %s", loginTimeout)
	}
}

// newCallbackHandler builds the one-shot callback route. Every request sends
// exactly one result on resultCh, which must be buffered.
func newCallbackHandler(expectedState string, resultCh chan<- callbackResult) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.QueryParam("state") != expectedState {
			resultCh <- callbackResult{err: fmt.Errorf("callback state mismatch (possible CSRF)")}
			return c.String(http.StatusForbidden, "invalid state")
		}
		code := c.QueryParam("code")
		if code == "" {
			resultCh <- callbackResult{err: fmt.Errorf("callback received without code")}
			return c.String(http.StatusBadRequest, "missing code")
		}
		resultCh <- callbackResult{code: code}
		return c.HTML(http.StatusOK, callbackHTML)
	}
}

// finishLogin exchanges the one-time code for a token and stores the session.
func finishLogin(code string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c := client.New(cfg.APIURL, "")
	res, err := c.ExchangeCode(ctx, code)
	if err != nil {
		log.Error().Err(err).Msg("code exchange failed")
		return fmt.Errorf("exchange login code: %w", err)
	}

	if err := auth.Save(auth.Session{Token: res.Token, UserID: res.UserID}); err != nil {
		return err
	}
	log.Info().Str("user_id", res.UserID).Msg("logged in")
	fmt.Printf("Logged in as %s\n", res.UserID)
	fmt.Println("Run 'voltlab' to open the showcase.")
	return nil
}

const callbackHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>Voltlab</title>
<style>
*{margin:0;padding:0;box-sizing:border-box}
body{
  background:#0a0a10;color:#e4e4ec;
  font-family:'SF Mono','Consolas',monospace;
  height:100vh;display:flex;align-items:center;justify-content:center;
}
.card{text-align:center}
.logo{
  font-size:28px;font-weight:700;letter-spacing:10px;
  text-transform:uppercase;margin-bottom:24px;
}
.logo span{display:inline-block;animation:glow 3s ease-in-out infinite}
.logo span:nth-child(odd){color:#f59e0b}
.logo span:nth-child(even){color:#fbbf24}
@keyframes glow{
  0%,100%{opacity:.6}
  50%{opacity:1}
}
.check{
  width:48px;height:48px;margin:0 auto 20px;
  border:2px solid #4ade80;border-radius:50%;
  display:flex;align-items:center;justify-content:center;
}
.check svg{width:24px;height:24px}
.msg{font-size:14px;color:#4ade80;font-weight:600;margin-bottom:8px}
.sub{font-size:12px;color:#505868}
</style>
</head>
<body>
<div class="card">
  <div class="logo">
    <span>V</span><span>O</span><span>L</span><span>T</span><span>L</span><span>A</span><span>B</span>
  </div>
  <div class="check">
    <svg viewBox="0 0 24 24" fill="none" stroke="#4ade80" stroke-width="2.5" stroke-linecap="round" stroke-linejoin="round">
      <polyline points="20 6 9 17 4 12"/>
    </svg>
  </div>
  <div class="msg">authenticated</div>
  <div class="sub">return to your terminal</div>
</div>
</body>
</html>`
