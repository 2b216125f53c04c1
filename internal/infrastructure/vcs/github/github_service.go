package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	domainerrors "github.com/Tomas-vilte/FixBot/internal/domain/errors"
	"github.com/Tomas-vilte/FixBot/internal/domain/models"
	"github.com/Tomas-vilte/FixBot/internal/domain/ports"
	"github.com/Tomas-vilte/FixBot/internal/i18n"
	"github.com/Tomas-vilte/FixBot/internal/infrastructure/httpclient"
	"github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
)

var (
	_ ports.VCSClient     = (*GitHubClient)(nil)
	_ ports.ActionsReader = (*GitHubClient)(nil)
)

const defaultAPIBaseURL = "https://api.github.com"

type IssuesService interface {
	CreateComment(ctx context.Context, owner, repo string, number int, comment *github.IssueComment) (*github.IssueComment, *github.Response, error)
}

type GitHubClient struct {
	issuesService IssuesService
	httpClient    httpclient.HTTPClient
	owner         string
	repo          string
	apiBaseURL    string
	token         string
	trans         *i18n.Translations
}

func NewGitHubClient(repo, token, apiBaseURL string, trans *i18n.Translations) (*GitHubClient, error) {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" {
		return nil, fmt.Errorf("%s", trans.GetMessage("invalid_repo_format", 0, map[string]interface{}{
			"Repo": repo,
		}))
	}

	var httpClient *http.Client
	if token != "" {
		// TokenType "token" para que el header en el wire sea "Authorization: token <x>"
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "token"})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)

	if apiBaseURL == "" {
		apiBaseURL = defaultAPIBaseURL
	}
	apiBaseURL = strings.TrimSuffix(apiBaseURL, "/")

	if apiBaseURL != defaultAPIBaseURL {
		baseURL, err := url.Parse(apiBaseURL + "/")
		if err != nil {
			return nil, fmt.Errorf("error al parsear la URL base de la API '%s': %w", apiBaseURL, err)
		}
		client.BaseURL = baseURL
	}

	return &GitHubClient{
		issuesService: client.Issues,
		httpClient:    httpclient.NewDefaultHTTPClient(),
		owner:         owner,
		repo:          name,
		apiBaseURL:    apiBaseURL,
		token:         token,
		trans:         trans,
	}, nil
}

func NewGitHubClientWithServices(
	issuesService IssuesService,
	httpClient httpclient.HTTPClient,
	owner string,
	repo string,
	apiBaseURL string,
	trans *i18n.Translations,
) *GitHubClient {
	if apiBaseURL == "" {
		apiBaseURL = defaultAPIBaseURL
	}
	return &GitHubClient{
		issuesService: issuesService,
		httpClient:    httpClient,
		owner:         owner,
		repo:          repo,
		apiBaseURL:    strings.TrimSuffix(apiBaseURL, "/"),
		token:         "",
		trans:         trans,
	}
}

// CreateComment publica un comentario en el PR y devuelve el recurso creado.
// Una respuesta no exitosa del proveedor se traduce a RemoteRequestError con
// el código y el cuerpo, para que la CLI los muestre tal cual.
func (ghc *GitHubClient) CreateComment(ctx context.Context, prNumber int, body string) (models.Comment, error) {
	comment, _, err := ghc.issuesService.CreateComment(ctx, ghc.owner, ghc.repo, prNumber, &github.IssueComment{
		Body: github.Ptr(body),
	})
	if err != nil {
		var errResp *github.ErrorResponse
		if errors.As(err, &errResp) && errResp.Response != nil {
			return models.Comment{}, domainerrors.NewRemoteRequestError("comment", errResp.Response.StatusCode, errResp.Message)
		}
		return models.Comment{}, fmt.Errorf("error al publicar el comentario en el PR %d: %w", prNumber, err)
	}

	return models.Comment{
		ID:      comment.GetID(),
		HTMLURL: comment.GetHTMLURL(),
	}, nil
}

// GetWorkflowRun obtiene la metadata cruda de una ejecución de workflow.
func (ghc *GitHubClient) GetWorkflowRun(ctx context.Context, runID string) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/actions/runs/%s", ghc.apiBaseURL, ghc.owner, ghc.repo, runID)
	return ghc.getRaw(ctx, "run", endpoint)
}

// ListWorkflowJobs obtiene la lista cruda de jobs de una ejecución.
func (ghc *GitHubClient) ListWorkflowJobs(ctx context.Context, runID string) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/actions/runs/%s/jobs", ghc.apiBaseURL, ghc.owner, ghc.repo, runID)
	return ghc.getRaw(ctx, "jobs", endpoint)
}

// getRaw hace un GET autenticado y devuelve el cuerpo sin decodificar, porque
// el resumen tiene que conservar la respuesta verbatim.
func (ghc *GitHubClient) getRaw(ctx context.Context, resource, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error al armar la petición de %s: %w", resource, err)
	}

	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if ghc.token != "" {
		req.Header.Set("Authorization", "token "+ghc.token)
	}

	resp, err := ghc.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error al consultar %s: %w", resource, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error al leer la respuesta de %s: %w", resource, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, domainerrors.NewRemoteRequestError(resource, resp.StatusCode, string(body))
	}

	return body, nil
}
