package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	authservices "github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/auth/services"
)

func authService(rt *Runtime) *authservices.AuthService {
	return rt.App.Service(authservices.AuthService{}).(*authservices.AuthService)
}

func newLoginCmd(state *rootState) *cobra.Command {
	var dto authservices.LoginDTO
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and keep the session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dto.Password == "" {
				dto.Password = os.Getenv("ADMIN_PASSWORD")
			}
			err := authService(state.runtime()).Login(cmd.Context(), dto)
			writeFieldErrors(cmd.ErrOrStderr(), err)
			return err
		},
	}
	cmd.Flags().StringVar(&dto.Email, "email", "", "admin email")
	cmd.Flags().StringVar(&dto.Password, "password", "", "admin password (default $ADMIN_PASSWORD)")
	return cmd
}

func newLogoutCmd(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := authService(state.runtime()).Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}
