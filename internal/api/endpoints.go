package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	custom_error "logistica/pkg/errors"
	"logistica/pkg/httpstatus"
	"logistica/pkg/models"
)

// The wrappers below return a ServerError when the backend answers with
// anything other than the documented success code. The Response is returned
// in every case where one was received.

func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, *Response, error) {
	var out models.LoginResponse
	resp, err := c.call(Anonymous(ctx), http.MethodPost, "/login", req, httpstatus.IsOk, &out)
	if err != nil {
		return nil, resp, err
	}
	return &out, resp, nil
}

func (c *Client) Register(ctx context.Context, req models.RegisterUserRequest) (*Response, error) {
	return c.call(ctx, http.MethodPost, "/register", req, httpstatus.IsCreated, nil)
}

func (c *Client) ListUsers(ctx context.Context) ([]models.User, *Response, error) {
	var out []models.User
	resp, err := c.call(ctx, http.MethodGet, "/users", nil, httpstatus.IsOk, &out)
	return out, resp, err
}

func (c *Client) ToggleUserStatus(ctx context.Context, id models.ID) (*Response, error) {
	return c.call(ctx, http.MethodPatch, "/users/"+url.PathEscape(id.String())+"/toggle-status", nil, httpstatus.IsOk, nil)
}

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, *Response, error) {
	var out []models.Product
	resp, err := c.call(ctx, http.MethodGet, "/products", nil, httpstatus.IsOk, &out)
	return out, resp, err
}

func (c *Client) ListBranches(ctx context.Context) ([]models.Branch, *Response, error) {
	var out []models.Branch
	resp, err := c.call(ctx, http.MethodGet, "/branches/options", nil, httpstatus.IsOk, &out)
	return out, resp, err
}

func (c *Client) ListMovements(ctx context.Context) ([]models.Movement, *Response, error) {
	var out []models.Movement
	resp, err := c.call(ctx, http.MethodGet, "/movements", nil, httpstatus.IsOk, &out)
	return out, resp, err
}

func (c *Client) CreateMovement(ctx context.Context, req models.CreateMovementRequest) (models.ID, *Response, error) {
	var out models.CreateMovementResponse
	resp, err := c.call(ctx, http.MethodPost, "/movements", req, httpstatus.IsCreated, &out)
	if err != nil {
		return "", resp, err
	}
	if out.ID.IsZero() {
		return "", resp, fmt.Errorf("POST /movements: response carries no id")
	}
	return out.ID, resp, nil
}

// StartMovement attaches the start evidence of a movement.
func (c *Client) StartMovement(ctx context.Context, id models.ID, file FormFile, fields []Field) (*Response, error) {
	return c.evidence(ctx, id, "start", file, fields)
}

// EndMovement attaches the delivery evidence of a movement.
func (c *Client) EndMovement(ctx context.Context, id models.ID, file FormFile, fields []Field) (*Response, error) {
	return c.evidence(ctx, id, "end", file, fields)
}

func (c *Client) evidence(ctx context.Context, id models.ID, action string, file FormFile, fields []Field) (*Response, error) {
	path := "/movements/" + url.PathEscape(id.String()) + "/" + action

	resp, err := c.Multipart(ctx, http.MethodPut, path, file, fields)
	if err != nil {
		return nil, err
	}
	if !httpstatus.IsOk(resp.Status) {
		return resp, custom_error.NewServerError(http.MethodPut+" "+path, resp.Status, resp.Data)
	}
	return resp, nil
}

func (c *Client) call(ctx context.Context, method, path string, body any, expected func(int) bool, out any) (*Response, error) {
	resp, err := c.Do(ctx, method, path, body, nil)
	if err != nil {
		return nil, err
	}

	if !expected(resp.Status) {
		return resp, custom_error.NewServerError(method+" "+path, resp.Status, resp.Data)
	}

	if out != nil {
		if err := resp.Decode(out); err != nil {
			return resp, fmt.Errorf("decode %s %s response: %w", method, path, err)
		}
	}

	return resp, nil
}
