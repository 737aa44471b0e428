package notification

import "farmmarket/models"

// DefaultTemplates returns the fixed catalog of named notification
// templates seeded by SeedDefaultTemplates. Variables document the
// expected placeholders; they are not enforced at render time.
func DefaultTemplates() []models.NotificationTemplate {
	return []models.NotificationTemplate{
		// Order templates.
		{
			Name:            "new_order_farmer",
			Category:        models.CategoryOrder,
			Channel:         models.ChannelEmail,
			SubjectTemplate: "New Order Received - Order #{{.orderId}}",
			BodyTemplate: `<h2>New Order Received!</h2>
<p>Hello {{.farmerName}},</p>
<p>You have received a new order from {{.buyerName}}.</p>
<ul>
  <li><strong>Order ID:</strong> #{{.orderId}}</li>
  <li><strong>Customer:</strong> {{.buyerName}}</li>
  <li><strong>Total Amount:</strong> ${{.totalAmount}}</li>
  <li><strong>Items:</strong> {{.itemCount}} items</li>
  <li><strong>Delivery Date:</strong> {{.deliveryDate}}</li>
</ul>
<p>Please log in to your dashboard to review and confirm this order.</p>
<p><a href="{{.dashboardUrl}}">View Order</a></p>
<p>Best regards,<br>Farmers Marketplace Team</p>`,
			Variables: map[string]string{
				"farmerName":   "string",
				"buyerName":    "string",
				"orderId":      "string",
				"totalAmount":  "number",
				"itemCount":    "number",
				"deliveryDate": "string",
				"dashboardUrl": "string",
			},
			IsActive: true,
		},
		{
			Name:            "new_order_buyer",
			Category:        models.CategoryOrder,
			Channel:         models.ChannelEmail,
			SubjectTemplate: "Order Confirmed - Order #{{.orderId}}",
			BodyTemplate: `<h2>Order Confirmation</h2>
<p>Hello {{.buyerName}},</p>
<p>Thank you for your order! We've received your order and it's being processed.</p>
<ul>
  <li><strong>Order ID:</strong> #{{.orderId}}</li>
  <li><strong>Farmer:</strong> {{.farmerName}}</li>
  <li><strong>Total Amount:</strong> ${{.totalAmount}}</li>
  <li><strong>Expected Delivery:</strong> {{.deliveryDate}}</li>
</ul>
<p>You will receive updates as your order is processed and prepared for delivery.</p>
<p><a href="{{.orderUrl}}">Track Order</a></p>
<p>Best regards,<br>Farmers Marketplace Team</p>`,
			Variables: map[string]string{
				"buyerName":    "string",
				"farmerName":   "string",
				"orderId":      "string",
				"totalAmount":  "number",
				"deliveryDate": "string",
				"orderUrl":     "string",
			},
			IsActive: true,
		},
		{
			Name:            "order_status_update",
			Category:        models.CategoryOrder,
			Channel:         models.ChannelPush,
			SubjectTemplate: "Order #{{.orderId}} - {{.statusName}}",
			BodyTemplate:    "Your order from {{.farmerName}} is now {{.statusName}}. {{.statusMessage}}",
			Variables: map[string]string{
				"orderId":       "string",
				"farmerName":    "string",
				"statusName":    "string",
				"statusMessage": "string",
			},
			IsActive: true,
		},
		{
			Name:            "order_ready_pickup",
			Category:        models.CategoryOrder,
			Channel:         models.ChannelEmail,
			SubjectTemplate: "Order Ready for Pickup - Order #{{.orderId}}",
			BodyTemplate: `<h2>Your Order is Ready!</h2>
<p>Hello {{.buyerName}},</p>
<p>Great news! Your order from {{.farmerName}} is ready for pickup.</p>
<ul>
  <li><strong>Order ID:</strong> #{{.orderId}}</li>
  <li><strong>Pickup Location:</strong> {{.pickupAddress}}</li>
  <li><strong>Available Hours:</strong> {{.pickupHours}}</li>
  <li><strong>Contact:</strong> {{.farmerPhone}}</li>
</ul>
<p>Please bring your order confirmation when picking up.</p>
<p>Best regards,<br>Farmers Marketplace Team</p>`,
			Variables: map[string]string{
				"buyerName":     "string",
				"farmerName":    "string",
				"orderId":       "string",
				"pickupAddress": "string",
				"pickupHours":   "string",
				"farmerPhone":   "string",
			},
			IsActive: true,
		},

		// Product templates.
		{
			Name:            "product_low_stock",
			Category:        models.CategoryProduct,
			Channel:         models.ChannelInApp,
			SubjectTemplate: "Low Stock Alert",
			BodyTemplate:    "Your product '{{.productName}}' is running low ({{.currentStock}} remaining). Consider restocking soon.",
			Variables: map[string]string{
				"productName":  "string",
				"currentStock": "number",
			},
			IsActive: true,
		},
		{
			Name:            "product_out_of_stock",
			Category:        models.CategoryProduct,
			Channel:         models.ChannelEmail,
			SubjectTemplate: "Product Out of Stock - {{.productName}}",
			BodyTemplate: `<h2>Product Out of Stock</h2>
<p>Hello {{.farmerName}},</p>
<p>Your product <strong>{{.productName}}</strong> is now out of stock and has been automatically hidden from the marketplace.</p>
<p>To make this product available again, please update your inventory levels and reactivate the listing.</p>
<p><a href="{{.productUrl}}">Update Product</a></p>
<p>Best regards,<br>Farmers Marketplace Team</p>`,
			Variables: map[string]string{
				"farmerName":  "string",
				"productName": "string",
				"productUrl":  "string",
			},
			IsActive: true,
		},
		{
			Name:            "new_product_approved",
			Category:        models.CategoryProduct,
			Channel:         models.ChannelEmail,
			SubjectTemplate: "Product Approved - {{.productName}}",
			BodyTemplate: `<h2>Product Approved!</h2>
<p>Hello {{.farmerName}},</p>
<p>Congratulations! Your product <strong>{{.productName}}</strong> has been approved and is now live on the marketplace.</p>
<p><a href="{{.productUrl}}">View Product</a></p>
<p>Best regards,<br>Farmers Marketplace Team</p>`,
			Variables: map[string]string{
				"farmerName":  "string",
				"productName": "string",
				"productUrl":  "string",
			},
			IsActive: true,
		},

		// Account templates.
		{
			Name:            "welcome_farmer",
			Category:        models.CategoryAccount,
			Channel:         models.ChannelEmail,
			SubjectTemplate: "Welcome to Farmers Marketplace!",
			BodyTemplate: `<h2>Welcome to Farmers Marketplace!</h2>
<p>Hello {{.farmerName}},</p>
<p>Welcome to our community of farmers and agricultural producers! We're excited to have you join us.</p>
<ol>
  <li><strong>Complete your profile:</strong> Add your farm details and photos</li>
  <li><strong>Add your products:</strong> List your fresh produce and goods</li>
  <li><strong>Set your availability:</strong> Configure pickup times and locations</li>
  <li><strong>Start selling:</strong> Connect with local customers</li>
</ol>
<p>Need help? Check out our <a href="{{.guideUrl}}">Farmer's Guide</a> or contact our support team.</p>
<p>Happy farming!<br>Farmers Marketplace Team</p>`,
			Variables: map[string]string{
				"farmerName": "string",
				"guideUrl":   "string",
			},
			IsActive: true,
		},
		{
			Name:            "welcome_buyer",
			Category:        models.CategoryAccount,
			Channel:         models.ChannelEmail,
			SubjectTemplate: "Welcome to Farmers Marketplace!",
			BodyTemplate: `<h2>Welcome to Farmers Marketplace!</h2>
<p>Hello {{.buyerName}},</p>
<p>Welcome to the freshest marketplace in town! We're thrilled to help you connect with local farmers and get the best fresh produce.</p>
<p><a href="{{.marketplaceUrl}}">Start Shopping</a></p>
<p>Happy shopping!<br>Farmers Marketplace Team</p>`,
			Variables: map[string]string{
				"buyerName":      "string",
				"marketplaceUrl": "string",
			},
			IsActive: true,
		},
		{
			Name:            "password_reset",
			Category:        models.CategoryAccount,
			Channel:         models.ChannelEmail,
			SubjectTemplate: "Password Reset Request",
			BodyTemplate: `<h2>Password Reset Request</h2>
<p>Hello {{.userName}},</p>
<p>We received a request to reset your password for your Farmers Marketplace account.</p>
<p><strong>If you requested this:</strong> click the link below to reset your password.</p>
<p><strong>If you didn't request this:</strong> you can safely ignore this email.</p>
<p><a href="{{.resetUrl}}">Reset Password</a></p>
<p><small>This link will expire in {{.expiryHours}} hours for security.</small></p>
<p>Best regards,<br>Farmers Marketplace Team</p>`,
			Variables: map[string]string{
				"userName":    "string",
				"resetUrl":    "string",
				"expiryHours": "number",
			},
			IsActive: true,
		},

		// Reminder templates.
		{
			Name:            "order_reminder_farmer",
			Category:        models.CategoryOrder,
			Channel:         models.ChannelPush,
			SubjectTemplate: "Order Reminder",
			BodyTemplate:    "Don't forget to prepare order #{{.orderId}} for {{.buyerName}}. Pickup scheduled for {{.pickupDate}}.",
			Variables: map[string]string{
				"orderId":    "string",
				"buyerName":  "string",
				"pickupDate": "string",
			},
			IsActive: true,
		},
		{
			Name:            "profile_incomplete_reminder",
			Category:        models.CategoryAccount,
			Channel:         models.ChannelInApp,
			SubjectTemplate: "Complete Your Profile",
			BodyTemplate:    "Your profile is {{.completionPercentage}}% complete. Add more details to attract more customers!",
			Variables: map[string]string{
				"completionPercentage": "number",
			},
			IsActive: true,
		},

		// System templates.
		{
			Name:            "maintenance_notice",
			Category:        models.CategorySystem,
			Channel:         models.ChannelEmail,
			SubjectTemplate: "Scheduled Maintenance Notice",
			BodyTemplate: `<h2>Scheduled Maintenance</h2>
<p>Hello {{.userName}},</p>
<p>We will be performing scheduled maintenance on Farmers Marketplace to improve your experience.</p>
<ul>
  <li><strong>Date:</strong> {{.maintenanceDate}}</li>
  <li><strong>Time:</strong> {{.maintenanceTime}}</li>
  <li><strong>Duration:</strong> {{.estimatedDuration}}</li>
  <li><strong>Services Affected:</strong> {{.affectedServices}}</li>
</ul>
<p>We apologize for any inconvenience and appreciate your patience.</p>
<p>Best regards,<br>Farmers Marketplace Team</p>`,
			Variables: map[string]string{
				"userName":          "string",
				"maintenanceDate":   "string",
				"maintenanceTime":   "string",
				"estimatedDuration": "string",
				"affectedServices":  "string",
			},
			IsActive: true,
		},
		{
			Name:            "new_feature_announcement",
			Category:        models.CategorySystem,
			Channel:         models.ChannelInApp,
			SubjectTemplate: "New Feature: {{.featureName}}",
			BodyTemplate:    "Check out our new feature: {{.featureName}}! {{.featureDescription}}",
			Variables: map[string]string{
				"featureName":        "string",
				"featureDescription": "string",
			},
			IsActive: true,
		},
	}
}
