package cmd

import (
	"github.com/focalhq/cli/pkg/service"
	"github.com/spf13/cobra"
)

var (
	uploadCaption  string
	uploadLocation string
	uploadTags     []string
	uploadYes      bool
	deleteYes      bool
	commentText    string
)

var photoCmd = &cobra.Command{
	Use:   "photo",
	Short: "Photo commands",
	Long:  "View, upload, like, comment on and delete photos",
}

var photoShowCmd = &cobra.Command{
	Use:   "show <photo-id>",
	Short: "Display a photo with its comments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewPhotoService(sess).ViewPhoto(args[0])
	},
}

var photoUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a photo",
	Long: `Upload a photo with an optional caption, location and tagged
people. Fields not given as flags are asked for interactively:
the location prompt autocompletes place names, and the tag
prompt autocompletes usernames.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewUploadService(sess).Upload(service.UploadOptions{
			FilePath:    args[0],
			Caption:     uploadCaption,
			Location:    uploadLocation,
			TaggedIDs:   uploadTags,
			Interactive: !uploadYes,
		})
	},
}

var photoLikeCmd = &cobra.Command{
	Use:   "like <photo-id>",
	Short: "Like or unlike a photo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewPhotoService(sess).ToggleLike(args[0])
	},
}

var photoCommentCmd = &cobra.Command{
	Use:   "comment <photo-id>",
	Short: "Comment on a photo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewPhotoService(sess).AddComment(args[0], commentText)
	},
}

var photoDeleteCmd = &cobra.Command{
	Use:   "delete <photo-id>",
	Short: "Delete one of your photos",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewPhotoService(sess).DeletePhoto(args[0], deleteYes)
	},
}

func init() {
	photoUploadCmd.Flags().StringVarP(&uploadCaption, "caption", "c", "", "Photo caption")
	photoUploadCmd.Flags().StringVarP(&uploadLocation, "location", "l", "", "Location text")
	photoUploadCmd.Flags().StringSliceVarP(&uploadTags, "tag", "t", nil, "Tagged user IDs (repeatable)")
	photoUploadCmd.Flags().BoolVarP(&uploadYes, "yes", "y", false, "Skip interactive prompts for missing fields")

	photoCommentCmd.Flags().StringVarP(&commentText, "message", "m", "", "Comment text (prompted when omitted)")
	photoDeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")

	photoCmd.AddCommand(photoShowCmd)
	photoCmd.AddCommand(photoUploadCmd)
	photoCmd.AddCommand(photoLikeCmd)
	photoCmd.AddCommand(photoCommentCmd)
	photoCmd.AddCommand(photoDeleteCmd)
}
