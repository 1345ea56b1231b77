/*
Package directorysdk provides the wire types and a client for the directory service.

# Overview

The directory keeps users, groups, memberships, responsibilities and roles, and
renders them as OpenID Connect claims for an external identity provider. The
server writes every response using the types in this package, so clients and
handlers agree on one set of JSON shapes.

# Client

A Client is bound to a base URL and, optionally, a bearer access token minted
by the identity provider:

	client := directorysdk.NewClient("https://directory.example.com")

	// Public endpoints
	health, err := client.GetLiveness(ctx)
	scopes, err := client.ListScopes(ctx)

	// Token-protected endpoints
	authed := client.WithToken(accessToken)
	info, err := authed.GetUserInfo(ctx)

The admin endpoints require the token subject to be an active staff user:

	user, err := authed.CreateUser(ctx, directorysdk.CreateUserRequest{...})
	group, err := authed.CreateGroup(ctx, directorysdk.GroupRequest{...})
	member, err := authed.AddMembership(ctx, user.ID, group.ID)
	role, err := authed.AssignRole(ctx, member.ID, responsibilityID)

# Error Handling

Failed calls return *APIError. Validation failures carry per-field details:

	_, err := authed.CreateUser(ctx, req)
	var apiErr *directorysdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == directorysdk.ErrorCodeValidation {
		for field, msg := range apiErr.Details {
			fmt.Printf("%s: %s\n", field, msg)
		}
	}

# Thread Safety

Clients are immutable after construction and safe for concurrent use.
*/
package directorysdk
