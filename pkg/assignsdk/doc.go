/*
Package assignsdk provides DTOs and a client for the assignbox HTTP API.

# Overview

The server's handlers encode the request and response types defined here, so
the client and the server cannot drift apart. A Client is the equivalent of
one browser: it keeps the "token" session cookie in its cookie jar after a
successful login and sends it back on every following request.

	users := assignsdk.NewClient("http://localhost:3000")
	if _, err := users.RegisterUser(ctx, assignsdk.RegisterRequest{
		Name: "A", Email: "a@x.com", Password: "secret1",
	}); err != nil {
		return err
	}
	if _, err := users.LoginUser(ctx, assignsdk.LoginRequest{
		Email: "a@x.com", Password: "secret1",
	}); err != nil {
		return err
	}
	admins, err := users.ListAdmins(ctx)

Use a separate Client per identity: logging in as an admin replaces the
cookie of a previous user login.

# Error Handling

Every non-success reply is returned as *APIError carrying the status code and
the server's message:

	_, err := admins.AcceptAssignment(ctx, id)
	var apiErr *assignsdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest {
		// already accepted
	}
*/
package assignsdk
